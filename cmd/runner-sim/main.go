// Command runner-sim plays seeded runs headlessly with an autopilot and
// prints a Markdown report of scores and tick timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/advent/config"
)

func main() {
	configPath := flag.String("config", "", "TOML file with a [tuning] table.")
	runs := flag.Int("runs", 20, "Number of runs to simulate.")
	seed := flag.Uint64("seed", 1, "Seed of the first run; run i uses seed+i.")
	limit := flag.Duration("limit", 5*time.Minute, "Simulated time after which a run is stopped.")
	timeout := flag.Duration("timeout", time.Minute, "Wall-clock budget for the whole simulation.")
	lead := flag.Float64("lead", 4, "Autopilot lead in reference frames.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause totals in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath, nil)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		log.Fatalf("Invalid tuning: %v", err)
	}
	if *runs < 1 {
		log.Fatalf("-runs must be at least 1, got %d", *runs)
	}

	report := &Report{
		Runs:           *runs,
		BaseSeed:       *seed,
		Limit:          *limit,
		Lead:           *lead,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("Simulating %d runs...", *runs)
	pilot := Autopilot{Lead: *lead}
	startTime := time.Now()
	for i := range *runs {
		res := simulate(ctx, cfg.Tuning, *seed+uint64(i), pilot, *limit)
		report.Results = append(report.Results, res)
		if res.Aborted {
			log.Printf("Timed out after %d runs", len(report.Results))
			break
		}
	}
	report.TotalTime = time.Since(startTime)
	report.Summarize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")
	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
