package main

import (
	"fmt"

	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/game"
	"github.com/plus3/stackfall/input"
	"github.com/plus3/stackfall/loop"
)

// playActions are the actions the monkey picks from while a game is running.
// SoftDrop and the side moves are listed twice so hard drops do not end every
// piece immediately.
var playActions = []input.Action{
	input.MoveLeft, input.MoveLeft,
	input.MoveRight, input.MoveRight,
	input.SoftDrop, input.SoftDrop,
	input.Rotate,
	input.HardDrop,
}

// MonkeySystem queues random actions for the next frame and checks the
// board invariants after every frame.
type MonkeySystem struct {
	Session  *game.Session
	Rand     engine.RandomSource
	PerFrame int

	Pushed     int
	Games      int
	Violations []string
}

func (m *MonkeySystem) Execute(frame *loop.Frame) {
	frame.Defer(func() {
		snap := m.Session.Snapshot()
		if err := checkSnapshot(snap); err != nil && len(m.Violations) < 10 {
			m.Violations = append(m.Violations, fmt.Sprintf("frame %d: %v", frame.Index, err))
		}
	})

	if m.Session.GameOver() {
		m.Session.Press(input.Restart)
		m.Pushed++
		m.Games++
		return
	}
	for range m.PerFrame {
		m.Session.Press(playActions[m.Rand.IntN(len(playActions))])
		m.Pushed++
	}
}

// checkSnapshot verifies that the active piece lies inside the board and
// never overlaps a landed block.
func checkSnapshot(snap engine.Snapshot) error {
	if snap.GameOver {
		if snap.HasActive {
			return fmt.Errorf("active piece present after game over")
		}
		return nil
	}
	if !snap.HasActive {
		return fmt.Errorf("no active piece while playing")
	}
	for _, p := range snap.Active.Cells() {
		if p.X < 0 || p.X >= snap.Cols || p.Y >= snap.Rows {
			return fmt.Errorf("%s cell (%d,%d) outside %dx%d board", snap.Active.Kind, p.X, p.Y, snap.Rows, snap.Cols)
		}
		if p.Y >= 0 && snap.BoardAt(p.Y, p.X).Occupied() {
			return fmt.Errorf("%s cell (%d,%d) overlaps a landed block", snap.Active.Kind, p.X, p.Y)
		}
	}
	return nil
}
