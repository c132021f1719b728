package debugui

import (
	"testing"
	"time"

	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemDefersItemsInOrder(t *testing.T) {
	var rendered []string
	sys := NewSystem()
	sys.Capture = func() InputState { return InputState{WantCaptureKeyboard: true} }
	sys.Add(
		Item{Name: "a", Render: func() { rendered = append(rendered, "a") }},
		Item{Name: "b", Render: func() { rendered = append(rendered, "b") }},
	)

	scheduler := loop.NewScheduler()
	scheduler.Register(sys)
	scheduler.Register(loop.SystemFunc(func(*loop.Frame) {
		rendered = append(rendered, "game")
	}))

	scheduler.Once(0)
	assert.Equal(t, []string{"game", "a", "b"}, rendered)
	assert.True(t, sys.Input.WantCaptureKeyboard)
	assert.Len(t, sys.Items(), 2)
}

func TestSystemDisabled(t *testing.T) {
	calls := 0
	sys := NewSystem()
	sys.Capture = func() InputState { return InputState{WantCaptureMouse: true} }
	sys.Add(Item{Name: "x", Render: func() { calls++ }})
	sys.Enabled = false

	scheduler := loop.NewScheduler()
	scheduler.Register(sys)
	scheduler.Once(0)

	assert.Equal(t, 0, calls)
	assert.Equal(t, InputState{}, sys.Input)
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	assert.Equal(t, float32(0), h.Average())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []float32{0, 1, 2}, h.Ordered())
	assert.InDelta(t, 1.5, h.Average(), 1e-6)

	h.Push(3)
	h.Push(4)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float32{2, 3, 4}, h.Ordered())
	assert.InDelta(t, 3.0, h.Average(), 1e-6)
	assert.Equal(t, float32(4), h.Max())
}

func TestMetricsSample(t *testing.T) {
	m := NewMetrics(4)
	start := time.Unix(0, 0)
	clock := start
	m.timer = &FrameTimer{last: start, now: func() time.Time { return clock }}

	clock = clock.Add(16 * time.Millisecond)
	m.Sample(&loop.SchedulerStats{Systems: []loop.SystemStats{
		{Name: "Gravity", LastDuration: 2 * time.Millisecond},
	}})

	require.Contains(t, m.Systems, "Gravity")
	assert.InDelta(t, 16.0, m.Frame.Average(), 1e-3)
	assert.InDelta(t, 2.0, m.Systems["Gravity"].Max(), 1e-6)

	clock = clock.Add(10 * time.Millisecond)
	m.Sample(nil)
	assert.Equal(t, 2, m.Frame.Len())
	assert.Equal(t, 1, m.Systems["Gravity"].Len())
}

func TestHistogramRows(t *testing.T) {
	rows := histogramRows(engine.Stats{Spawns: map[engine.Kind]int{
		engine.KindZ: 1,
		engine.KindI: 3,
	}})

	require.Len(t, rows, 2)
	assert.Equal(t, engine.KindI, rows[0].Kind)
	assert.InDelta(t, 0.75, rows[0].Share, 1e-9)
	assert.Equal(t, engine.KindZ, rows[1].Kind)
	assert.Equal(t, 1, rows[1].Count)
}
