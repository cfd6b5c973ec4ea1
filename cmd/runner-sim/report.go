package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Runs     int
	BaseSeed uint64
	Limit    time.Duration
	Lead     float64

	// Results
	Results        []RunResult
	TotalTime      time.Duration
	TotalTicks     int
	TickTime       Stats
	Score          ScoreSummary
	Crashes        int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type ScoreSummary struct {
	Min    int
	Max    int
	Median int
	Avg    float64
}

// Summarize fills the aggregate fields from Results.
func (r *Report) Summarize() {
	r.TotalTicks = 0
	r.Crashes = 0
	r.TickTime = Stats{}
	r.Score = ScoreSummary{}

	scores := make([]int, 0, len(r.Results))
	for _, res := range r.Results {
		r.TotalTicks += res.Ticks
		if res.Crashed {
			r.Crashes++
		}
		r.TickTime.Samples = append(r.TickTime.Samples, res.TickTime.Samples...)
		scores = append(scores, res.Score)
	}
	r.TickTime.Finalize()

	if len(scores) == 0 {
		return
	}
	slices.Sort(scores)
	total := 0
	for _, s := range scores {
		total += s
	}
	r.Score = ScoreSummary{
		Min:    scores[0],
		Max:    scores[len(scores)-1],
		Median: scores[len(scores)/2],
		Avg:    float64(total) / float64(len(scores)),
	}
}

const reportTemplate = `
# Runner Simulation Report

## Configuration
- **Runs:** {{len .Results}} of {{.Runs}} requested
- **Seeds:** {{.BaseSeed}} to {{add .BaseSeed (len .Results) -1}}
- **Simulated Time Limit:** {{.Limit}}
- **Autopilot Lead:** {{printf "%.1f" .Lead}} frames

## Scores
- **Min:** {{.Score.Min}}
- **Median:** {{.Score.Median}}
- **Max:** {{.Score.Max}}
- **Avg:** {{printf "%.2f" .Score.Avg}}
- **Crashes:** {{.Crashes}} of {{len .Results}}

| Seed | Score | Ticks | Simulated | Outcome | Avg Tick |
|------|-------|-------|-----------|---------|----------|
{{range .Results}}| {{.Seed}} | {{.Score}} | {{.Ticks}} | {{.Elapsed}} | {{outcome .}} | {{.TickTime.Avg}} |
{{end}}
## Performance
- **Total Ticks:** {{.TotalTicks}}
- **Wall Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

var reportFuncs = template.FuncMap{
	"add": func(seed uint64, n, delta int) int64 {
		return int64(seed) + int64(n) + int64(delta)
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
	"outcome": func(r RunResult) string {
		switch {
		case r.Crashed:
			return "crashed"
		case r.Capped:
			return "time limit"
		case r.Aborted:
			return "aborted"
		}
		return "unknown"
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
