package input

import "github.com/plus3/stackfall/engine"

// Controller is the engine surface the dispatch table drives.
type Controller interface {
	MoveLeft() bool
	MoveRight() bool
	SoftDrop() bool
	Rotate() bool
	HardDrop() (int, engine.StepResult)
	Restart()
	GameOver() bool
}

// Dispatcher routes actions through a fixed table. Restart is only honored
// while the game is over; every other action is ignored in that state.
type Dispatcher struct {
	ctrl  Controller
	table map[Action]func() bool

	// OnChange runs after every dispatched action that changed state.
	OnChange func(Action)
}

// NewDispatcher builds the table for ctrl.
func NewDispatcher(ctrl Controller) *Dispatcher {
	return &Dispatcher{
		ctrl: ctrl,
		table: map[Action]func() bool{
			MoveLeft:  ctrl.MoveLeft,
			MoveRight: ctrl.MoveRight,
			SoftDrop:  ctrl.SoftDrop,
			Rotate:    ctrl.Rotate,
			HardDrop: func() bool {
				_, res := ctrl.HardDrop()
				return res.Landed
			},
			Restart: func() bool {
				ctrl.Restart()
				return true
			},
		},
	}
}

// Enabled reports whether a would be dispatched in the current state.
func (d *Dispatcher) Enabled(a Action) bool {
	if _, ok := d.table[a]; !ok {
		return false
	}
	return (a == Restart) == d.ctrl.GameOver()
}

// Dispatch runs the entry for a and reports whether state changed.
func (d *Dispatcher) Dispatch(a Action) bool {
	if !d.Enabled(a) {
		return false
	}
	changed := d.table[a]()
	if changed && d.OnChange != nil {
		d.OnChange(a)
	}
	return changed
}
