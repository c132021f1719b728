// Package game wires the engine, the action dispatcher and the gravity timer
// into a frame-driven session that every frontend shares.
package game

import (
	"fmt"
	"log"

	"github.com/plus3/stackfall/config"
	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/input"
	"github.com/plus3/stackfall/loop"
)

// InputSystem applies queued actions in push order.
type InputSystem struct {
	Queue      *input.Queue
	Dispatcher *input.Dispatcher

	// Applied counts actions that changed state since the session started.
	Applied int
}

// Execute implements loop.System.
func (s *InputSystem) Execute(*loop.Frame) {
	s.Applied += s.Queue.Flush(s.Dispatcher)
}

// controller restarts gravity together with the engine.
type controller struct {
	*engine.Engine
	gravity *GravitySystem
}

func (c *controller) Restart() {
	c.Engine.Restart()
	c.gravity.Start()
}

// Session owns one engine and the systems that drive it. It is not safe for
// concurrent use; frontends call it from their UI loop.
type Session struct {
	cfg        *config.Config
	engine     *engine.Engine
	queue      *input.Queue
	dispatcher *input.Dispatcher
	scheduler  *loop.Scheduler
	gravity    *GravitySystem
	input      *InputSystem

	// OnChange is the render callback. It runs after every action or gravity
	// tick that changed state.
	OnChange func()
}

// New builds a session from cfg. Extra options are applied after the ones
// derived from cfg.
func New(cfg *config.Config, opts ...engine.Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engineOpts := append([]engine.Option{engine.WithLogger(log.Default())}, cfg.EngineOptions()...)
	e, err := engine.New(append(engineOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		engine:    e,
		queue:     input.NewQueue(),
		scheduler: loop.NewScheduler(),
	}
	s.gravity = NewGravitySystem(e, cfg.Tick)
	s.gravity.OnStep = func(engine.StepResult) { s.changed() }

	s.dispatcher = input.NewDispatcher(&controller{Engine: e, gravity: s.gravity})
	s.dispatcher.OnChange = func(input.Action) { s.changed() }

	s.input = &InputSystem{Queue: s.queue, Dispatcher: s.dispatcher}
	s.scheduler.RegisterNamed("Input", s.input)
	s.scheduler.RegisterNamed("Gravity", s.gravity)

	log.Printf("[Session] started %dx%d board, tick %s", e.Rows(), e.Cols(), cfg.Tick)
	return s, nil
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Register appends a system that runs after input and gravity every frame.
func (s *Session) Register(name string, sys loop.System) {
	s.scheduler.RegisterNamed(name, sys)
}

// Press queues a for the next Update.
func (s *Session) Press(a input.Action) {
	s.queue.Push(a)
}

// Enabled reports whether a would currently have any effect.
func (s *Session) Enabled(a input.Action) bool {
	return s.dispatcher.Enabled(a)
}

// Update runs one frame: queued input first, then gravity.
func (s *Session) Update(dt float64) {
	s.scheduler.Once(dt)
}

// Restart queues a restart. It only takes effect while the game is over.
func (s *Session) Restart() {
	s.Press(input.Restart)
}

func (s *Session) Snapshot() engine.Snapshot {
	return s.engine.Snapshot()
}

func (s *Session) GameOver() bool {
	return s.engine.GameOver()
}

func (s *Session) Stats() engine.Stats {
	return s.engine.Stats()
}

func (s *Session) SchedulerStats() *loop.SchedulerStats {
	return s.scheduler.Stats()
}

// Applied returns how many queued actions changed state.
func (s *Session) Applied() int {
	return s.input.Applied
}

func (s *Session) Gravity() *GravitySystem {
	return s.gravity
}

// Engine exposes the engine for inspectors. Mutating it outside Update
// bypasses the dispatch table.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

func (s *Session) Config() *config.Config {
	return s.cfg
}
