package debugui

import (
	"time"

	"github.com/plus3/stackfall/loop"
)

// History is a fixed-size ring of float32 samples, suitable for ImGui plots.
type History struct {
	samples []float32
	offset  int
	filled  int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{samples: make([]float32, size)}
}

func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

func (h *History) Len() int {
	return h.filled
}

// Ordered returns the samples oldest first, padded with leading zeros until
// the ring has filled.
func (h *History) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.offset:])
	copy(out[n:], h.samples[:h.offset])
	return out
}

// Average is the mean of the recorded samples.
func (h *History) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(h.filled)
}

// Max returns the largest recorded sample.
func (h *History) Max() float32 {
	var m float32
	for _, v := range h.samples {
		if v > m {
			m = v
		}
	}
	return m
}

// FrameTimer measures wall time between frames.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now(), now: time.Now}
}

// DeltaTime returns the seconds elapsed since the previous call.
func (ft *FrameTimer) DeltaTime() float32 {
	now := ft.now()
	delta := float32(now.Sub(ft.last).Seconds())
	ft.last = now
	return delta
}

// Metrics collects frame times and per-system latency once per frame.
type Metrics struct {
	Frame   *History
	Systems map[string]*History

	size  int
	timer *FrameTimer
}

func NewMetrics(size int) *Metrics {
	return &Metrics{
		Frame:   NewHistory(size),
		Systems: make(map[string]*History),
		size:    size,
		timer:   NewFrameTimer(),
	}
}

// Sample records the time since the last sample and the last duration of
// every system in stats.
func (m *Metrics) Sample(stats *loop.SchedulerStats) {
	m.Frame.Push(m.timer.DeltaTime() * 1000)
	if stats == nil {
		return
	}
	for _, sys := range stats.Systems {
		h, ok := m.Systems[sys.Name]
		if !ok {
			h = NewHistory(m.size)
			m.Systems[sys.Name] = h
		}
		h.Push(float32(sys.LastDuration.Seconds() * 1000))
	}
}
