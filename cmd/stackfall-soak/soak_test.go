package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/stackfall/config"
	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/game"
	"github.com/plus3/stackfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonkeyKeepsInvariants(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 3
	cfg.Tick = 50 * time.Millisecond

	session, err := game.New(cfg)
	require.NoError(t, err)

	monkey := &MonkeySystem{Session: session, Rand: engine.NewRand(11), PerFrame: 4}
	session.Register("Monkey", monkey)

	for range 5000 {
		session.Update(1.0 / 60.0)
	}

	assert.Empty(t, monkey.Violations)
	assert.Equal(t, 5000*4+monkey.Games*(1-4), monkey.Pushed)
	assert.Positive(t, session.Stats().Merges)
	assert.Positive(t, session.Applied())
}

func TestCheckSnapshot(t *testing.T) {
	e, err := engine.New(engine.WithRand(engine.KindSource(engine.KindO)))
	require.NoError(t, err)
	assert.NoError(t, checkSnapshot(e.Snapshot()))

	snap := e.Snapshot()
	snap.Active.X = -1
	assert.Error(t, checkSnapshot(snap))

	snap = e.Snapshot()
	snap.HasActive = false
	assert.Error(t, checkSnapshot(snap))
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration: time.Second,
		Seed:     5,
		Rows:     20,
		Cols:     10,
		Engine: engine.Stats{
			Spawns: map[engine.Kind]int{engine.KindT: 2, engine.KindI: 1},
			Merges: 2,
		},
		Scheduler: &loop.SchedulerStats{Systems: []loop.SystemStats{
			{Name: "Gravity", ExecutionCount: 4},
		}},
		FinalBoard: "..\n..\n",
		UpdateTime: Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}},
	}
	report.UpdateTime.Finalize()
	assert.Equal(t, time.Millisecond, report.UpdateTime.Min)
	assert.Equal(t, 3*time.Millisecond, report.UpdateTime.Max)
	assert.Equal(t, 2*time.Millisecond, report.UpdateTime.Avg)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "- **Seed:** 5")
	assert.Contains(t, out, "| I | 1 |\n| T | 2 |")
	assert.Contains(t, out, "| Gravity | 4 |")
	assert.Contains(t, out, "No violations.")
}
