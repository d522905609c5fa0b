package engine

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shift-analytics/internal/stats"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Header is the column order of generated exports.
var Header = []string{"IssueId", "Title", "CreateDate", "ResolvedDate"}

type GeneratorConfig struct {
	Scenario string // "baseline" or "noisy"
	Noise    int    // extra random tickets in the noisy scenario
	Seed     int64
	Now      time.Time
}

// Ticket is one generated export row; dates are already formatted.
type Ticket struct {
	IssueID      string
	Title        string
	CreateDate   string
	ResolvedDate string
}

// Row returns the ticket in Header order.
func (t Ticket) Row() []string {
	return []string{t.IssueID, t.Title, t.CreateDate, t.ResolvedDate}
}

// Generate builds the verification data set relative to cfg.Now:
//   - a year-to-date block of 20 tickets on days 1-20 of January to May,
//     created 10:00 and resolved 4h later;
//   - a rolling block of 15 tickets on days 1-15 of the current month and
//     each of the five before it, created 14:00 and resolved 2h later.
//
// Blocks may reach past cfg.Now; those rows are skipped by the engine.
// The noisy scenario appends cfg.Noise random tickets, every tenth of them
// malformed.
func Generate(cfg GeneratorConfig) []Ticket {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	loc := cfg.Now.Location()
	year := cfg.Now.Year()

	var tickets []Ticket

	for m := time.January; m <= time.May; m++ {
		for day := 1; day <= 20; day++ {
			created := time.Date(year, m, day, 10, 0, 0, 0, loc)
			tickets = append(tickets, newTicket(
				fmt.Sprintf("ytd-%d-%d", m-1, day),
				fmt.Sprintf("YTD Test Ticket %d-%d", m-1, day),
				created, created.Add(4*time.Hour),
			))
		}
	}

	for back := 0; back < 6; back++ {
		first := time.Date(year, cfg.Now.Month()-time.Month(back), 1, 14, 0, 0, 0, loc)
		for day := 1; day <= 15; day++ {
			created := first.AddDate(0, 0, day-1)
			tickets = append(tickets, newTicket(
				fmt.Sprintf("6mo-%d-%d", back, day),
				fmt.Sprintf("6-Month Test Ticket %d-%d", back, day),
				created, created.Add(2*time.Hour),
			))
		}
	}

	if cfg.Scenario == "noisy" {
		tickets = append(tickets, noise(cfg)...)
	}
	return tickets
}

// noise spreads random tickets over the 180 days before cfg.Now with
// exponentially distributed resolution times.
func noise(cfg GeneratorConfig) []Ticket {
	if cfg.Noise <= 0 {
		return nil
	}
	r := rand.New(rand.NewSource(cfg.Seed))
	out := make([]Ticket, 0, cfg.Noise)

	for i := 0; i < cfg.Noise; i++ {
		id := uuid.Must(uuid.NewRandomFromReader(r)).String()
		created := cfg.Now.Add(-time.Duration(r.Int63n(180*24*60)+1) * time.Minute).Truncate(time.Minute)
		resolved := created.Add(time.Duration(r.ExpFloat64()*6*60) * time.Minute)

		t := newTicket(id, fmt.Sprintf("Noise Ticket %d", i+1), created, resolved)
		if i%10 == 9 {
			t = corrupt(t, i/10)
		}
		out = append(out, t)
	}
	return out
}

// corrupt breaks a ticket in one of the ways real exports do.
func corrupt(t Ticket, kind int) Ticket {
	switch kind % 4 {
	case 0:
		t.ResolvedDate = ""
	case 1:
		t.CreateDate, t.ResolvedDate = t.ResolvedDate, t.CreateDate
		if t.CreateDate == t.ResolvedDate {
			t.ResolvedDate = "N/A"
		}
	case 2:
		t.CreateDate = "N/A"
	default:
		t.CreateDate += "Z"
	}
	return t
}

func newTicket(id, title string, created, resolved time.Time) Ticket {
	return Ticket{
		IssueID:      id,
		Title:        title,
		CreateDate:   created.Format(stats.TimestampLayout),
		ResolvedDate: resolved.Format(stats.TimestampLayout),
	}
}

// Save writes tickets as CSV, or as a workbook when path ends in .xlsx.
func Save(path string, tickets []Ticket) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return saveXLSX(path, tickets)
	}
	return saveCSV(path, tickets)
}

func saveCSV(path string, tickets []Ticket) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, t := range tickets {
		if err := w.Write(t.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func saveXLSX(path string, tickets []Ticket) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &Header); err != nil {
		return err
	}
	for i, t := range tickets {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := t.Row()
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
