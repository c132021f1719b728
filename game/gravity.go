package game

import (
	"log"
	"time"

	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/loop"
)

// DefaultMaxSteps bounds how many gravity ticks a single long frame can
// catch up on. Backlog beyond that is dropped.
const DefaultMaxSteps = 3

// MinInterval is the shortest gravity interval. Smaller values, including
// zero, are raised to it.
const MinInterval = time.Millisecond

// Stepper is the part of the engine gravity drives.
type Stepper interface {
	Step() engine.StepResult
	GameOver() bool
}

// GravitySystem advances the active piece one row every Interval of frame
// time. It stops itself once the game is over.
type GravitySystem struct {
	Interval time.Duration
	MaxSteps int

	// OnStep runs after every tick that changed the board or the piece.
	OnStep func(engine.StepResult)

	stepper Stepper
	elapsed time.Duration
	running bool
}

// NewGravitySystem returns a running gravity timer for s.
func NewGravitySystem(s Stepper, interval time.Duration) *GravitySystem {
	return &GravitySystem{
		Interval: max(interval, MinInterval),
		MaxSteps: DefaultMaxSteps,
		stepper:  s,
		running:  true,
	}
}

// Start re-arms the timer with an empty accumulator.
func (g *GravitySystem) Start() {
	g.elapsed = 0
	g.running = true
}

// Stop halts the timer until the next Start.
func (g *GravitySystem) Stop() {
	g.running = false
}

func (g *GravitySystem) Running() bool {
	return g.running
}

// Execute implements loop.System.
func (g *GravitySystem) Execute(frame *loop.Frame) {
	if !g.running {
		return
	}
	if g.stepper.GameOver() {
		g.halt(frame)
		return
	}

	g.elapsed += time.Duration(frame.DeltaTime * float64(time.Second))

	interval := max(g.Interval, MinInterval)
	steps := 0
	for g.elapsed >= interval && steps < g.MaxSteps {
		g.elapsed -= interval
		steps++

		res := g.stepper.Step()
		if (res.Moved || res.Landed) && g.OnStep != nil {
			g.OnStep(res)
		}
		if g.stepper.GameOver() {
			g.halt(frame)
			return
		}
	}
	if g.elapsed >= interval {
		g.elapsed %= interval
	}
}

func (g *GravitySystem) halt(frame *loop.Frame) {
	g.running = false
	index := frame.Index
	frame.Defer(func() {
		log.Printf("[Gravity] game over at frame %d, timer stopped", index)
	})
}
