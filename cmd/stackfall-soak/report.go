package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/loop"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Seed           uint64
	Rows           int
	Cols           int
	Tick           time.Duration
	FrameTime      time.Duration
	ActionsPerTick int

	// Results
	TotalUpdates  int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Pushed        int
	Applied       int
	Games         int
	Engine        engine.Stats
	Scheduler     *loop.SchedulerStats
	Violations    []string
	FinalBoard    string
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
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

// SpawnRow is one line of the spawn histogram.
type SpawnRow struct {
	Kind  engine.Kind
	Count int
}

// Spawns lists the histogram in kind order.
func (r *Report) Spawns() []SpawnRow {
	var rows []SpawnRow
	for k := range engine.Kind(engine.KindCount) {
		if n, ok := r.Engine.Spawns[k]; ok {
			rows = append(rows, SpawnRow{Kind: k, Count: n})
		}
	}
	return rows
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Board:** {{.Rows}}x{{.Cols}}
- **Gravity Tick:** {{.Tick}}
- **Simulated Frame:** {{.FrameTime}}
- **Actions Per Frame:** {{.ActionsPerTick}}

## Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Actions:** {{.Pushed}} queued, {{.Applied}} applied
- **Games:** {{.Games}}
- **Pieces:** {{.Engine.TotalSpawns}}
- **Merges:** {{.Engine.Merges}}
- **Lines Cleared:** {{.Engine.Lines}}

## Spawns
| Kind | Count |
|------|-------|
{{range .Spawns}}| {{.Kind}} | {{.Count}} |
{{end}}
## Systems
| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{range .Scheduler.Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Invariants
{{if .Violations}}{{range .Violations}}- {{.}}
{{end}}{{else}}No violations.
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

## Final Board
` + "```" + `
{{.FinalBoard}}` + "```" + `
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
