// Package ingest decodes ticket exports into stats.RawRecord rows.
//
// Rows are mapped header to cell with no type conversion; validation happens
// in stats.Aggregate.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shift-analytics/internal/config"
	"shift-analytics/internal/stats"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoHeader          = errors.New("no header row found")
)

// Decoder turns one export stream into rows of cells, header first.
type Decoder interface {
	Rows(r io.Reader) ([][]string, error)
}

// DecoderFor picks a Decoder from the file extension.
func DecoderFor(path string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSVDecoder{}, nil
	case ".xlsx", ".xlsm":
		return XLSXDecoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Decode reads all rows from r and maps them onto records using cols.
func Decode(r io.Reader, dec Decoder, cols config.Columns) ([]stats.RawRecord, error) {
	rows, err := dec.Rows(r)
	if err != nil {
		return nil, err
	}
	return MapRows(rows, cols)
}

// LoadFile opens and decodes a single export.
func LoadFile(path string, cols config.Columns) ([]stats.RawRecord, error) {
	dec, err := DecoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Decode(f, dec, cols)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("rows", len(records)).Msg("Decoded ticket export")
	return records, nil
}

// LoadFiles decodes several exports concurrently and concatenates their rows
// in argument order. The first failure cancels the rest.
func LoadFiles(ctx context.Context, paths []string, cols config.Columns) ([]stats.RawRecord, error) {
	parts := make([][]stats.RawRecord, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			recs, err := LoadFile(path, cols)
			if err != nil {
				return err
			}
			parts[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]stats.RawRecord, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
