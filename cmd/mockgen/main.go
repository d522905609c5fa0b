package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"shift-analytics/cmd/mockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "baseline", "Scenario to generate: baseline, noisy")
	noise := flag.Int("noise", 200, "Number of random tickets added by the noisy scenario")
	seed := flag.Int64("seed", 1, "Random seed for the noisy scenario")
	asOf := flag.String("as-of", "", "Reference date (YYYY-MM-DD) the data is generated around; defaults to now")
	out := flag.String("out", "./.cache/tickets.csv", "Output file (.csv or .xlsx)")
	flag.Parse()

	now := time.Now()
	if *asOf != "" {
		d, err := time.ParseInLocation("2006-01-02", *asOf, time.Local)
		if err != nil {
			fmt.Printf("Invalid -as-of date: %v\n", err)
			os.Exit(1)
		}
		now = d.Add(12 * time.Hour)
	}

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Noise:    *noise,
		Seed:     *seed,
		Now:      now,
	}

	fmt.Printf("Generating scenario '%s' around %s to %s...\n", cfg.Scenario, now.Format("2006-01-02"), *out)

	tickets := engine.Generate(cfg)
	if err := engine.Save(*out, tickets); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. Wrote %d tickets.\n", len(tickets))
}
