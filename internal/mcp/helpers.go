package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"shift-analytics/internal/ingest"
	"shift-analytics/internal/stats"

	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var errNoPaths = errors.New("at least one export path is required")

// analysisRun is one decoded and aggregated tool invocation.
type analysisRun struct {
	result stats.AnalysisResult
	period stats.Period
}

// analyze decodes paths and aggregates them as of asOf.
func (s *Server) analyze(ctx context.Context, tool string, paths []string, asOf, period string) (analysisRun, error) {
	logger := log.With().Str("run_id", uuid.NewString()).Str("tool", tool).Logger()

	if len(paths) == 0 {
		return analysisRun{}, errNoPaths
	}
	p, err := stats.ParsePeriod(period)
	if err != nil {
		return analysisRun{}, err
	}
	now, err := s.cfg.ParseAsOf(asOf)
	if err != nil {
		return analysisRun{}, err
	}

	start := time.Now()
	records, err := ingest.LoadFiles(ctx, s.resolvePaths(paths), s.cfg.Columns)
	if err != nil {
		logger.Error().Err(err).Strs("paths", paths).Msg("Failed to load ticket exports")
		return analysisRun{}, err
	}

	res := stats.Aggregate(records, now)
	logger.Info().
		Int("files", len(paths)).
		Int("processed", res.TotalProcessedRows).
		Int("valid", res.TotalValidRows).
		Time("as_of", now).
		Dur("elapsed", time.Since(start)).
		Msg("Analysis complete")

	return analysisRun{result: res, period: p}, nil
}

// resolvePaths anchors relative paths at DATA_PATH.
func (s *Server) resolvePaths(paths []string) []string {
	return lo.Map(paths, func(p string, _ int) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(s.cfg.DataPath, p)
	})
}

func (s *Server) formatResult(data any) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

func textResult(text string) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: text}},
	}
}
