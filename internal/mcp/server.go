// Package mcp exposes the ticket aggregation engine as MCP tools over stdio.
package mcp

import (
	"context"

	"shift-analytics/internal/config"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

const serverName = "shift-analytics"

// Server holds the state for the MCP server.
type Server struct {
	cfg     *config.AppConfig
	version string
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig, version string) *Server {
	if version == "" {
		version = "dev"
	}
	return &Server{cfg: cfg, version: version}
}

// Serve runs the MCP session on stdin/stdout until the client disconnects
// or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().
		Str("version", s.version).
		Str("data_path", s.cfg.DataPath).
		Str("timezone", s.cfg.Location.String()).
		Msg("Starting MCP server on stdio")

	return s.build().Run(ctx, &sdk.StdioTransport{})
}

// build registers every tool on a fresh SDK server.
func (s *Server) build() *sdk.Server {
	srv := sdk.NewServer(&sdk.Implementation{Name: serverName, Version: s.version}, nil)

	sdk.AddTool(srv, &sdk.Tool{
		Name:        toolAnalyzeTickets,
		Description: descAnalyzeTickets,
	}, s.handleAnalyzeTickets)

	sdk.AddTool(srv, &sdk.Tool{
		Name:        toolShiftDistribution,
		Description: descShiftDistribution,
	}, s.handleShiftDistribution)

	sdk.AddTool(srv, &sdk.Tool{
		Name:        toolMonthlyBreakdown,
		Description: descMonthlyBreakdown,
	}, s.handleMonthlyBreakdown)

	return srv
}
