package ingest

import (
	"strings"

	"shift-analytics/internal/config"
	"shift-analytics/internal/stats"
)

// MapRows turns header + data rows into records. Configured timestamp
// columns are renamed to the canonical CreateDate/ResolvedDate keys; every
// other column is kept as-is. Short rows are padded with empty strings and
// blank rows are dropped.
func MapRows(rows [][]string, cols config.Columns) ([]stats.RawRecord, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	headers := normalizeHeaders(rows[0], cols)
	if len(headers) == 0 {
		return nil, ErrNoHeader
	}

	records := make([]stats.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make(stats.RawRecord, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			rec[h] = cell(row, i)
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeHeaders(raw []string, cols config.Columns) []string {
	aliases := map[string]string{
		strings.ToLower(stats.FieldCreateDate):   stats.FieldCreateDate,
		strings.ToLower(stats.FieldResolvedDate): stats.FieldResolvedDate,
	}
	if cols.CreateDate != "" {
		aliases[strings.ToLower(cols.CreateDate)] = stats.FieldCreateDate
	}
	if cols.ResolvedDate != "" {
		aliases[strings.ToLower(cols.ResolvedDate)] = stats.FieldResolvedDate
	}

	headers := make([]string, len(raw))
	named := 0
	for i, h := range raw {
		h = cleanCell(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if canonical, ok := aliases[strings.ToLower(h)]; ok {
			h = canonical
		}
		headers[i] = h
		if h != "" {
			named++
		}
	}
	if named == 0 {
		return nil
	}
	return headers
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return cleanCell(row[i])
}

func cleanCell(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
