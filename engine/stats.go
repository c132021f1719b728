package engine

import "github.com/kamstrup/intmap"

// Stats are diagnostic counters collected since the engine was built.
// Spawns only counts pieces that entered play; the blocked spawn that ends a
// game is not recorded.
type Stats struct {
	Spawns   map[Kind]int
	Merges   int
	Lines    int
	Restarts int
}

// TotalSpawns sums the per-kind spawn histogram.
func (s Stats) TotalSpawns() int {
	total := 0
	for _, n := range s.Spawns {
		total += n
	}
	return total
}

type statsRecorder struct {
	spawns   *intmap.Map[Kind, int]
	merges   int
	lines    int
	restarts int
}

func newStatsRecorder() *statsRecorder {
	return &statsRecorder{
		spawns: intmap.New[Kind, int](KindCount),
	}
}

func (s *statsRecorder) spawned(k Kind) {
	n, _ := s.spawns.Get(k)
	s.spawns.Put(k, n+1)
}

func (s *statsRecorder) merged(lines int) {
	s.merges++
	s.lines += lines
}

func (s *statsRecorder) restarted() {
	s.restarts++
}

// Stats returns a copy of the engine's counters.
func (e *Engine) Stats() Stats {
	out := Stats{
		Spawns:   make(map[Kind]int, e.stats.spawns.Len()),
		Merges:   e.stats.merges,
		Lines:    e.stats.lines,
		Restarts: e.stats.restarts,
	}
	for _, s := range e.shapes {
		if n, ok := e.stats.spawns.Get(s.Kind); ok {
			out.Spawns[s.Kind] = n
		}
	}
	return out
}
