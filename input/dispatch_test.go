package input_test

import (
	"testing"

	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	calls    []string
	gameOver bool
	blocked  bool
}

func (f *fakeController) record(name string) bool {
	f.calls = append(f.calls, name)
	return !f.blocked
}

func (f *fakeController) MoveLeft() bool  { return f.record("left") }
func (f *fakeController) MoveRight() bool { return f.record("right") }
func (f *fakeController) SoftDrop() bool  { return f.record("down") }
func (f *fakeController) Rotate() bool    { return f.record("rotate") }

func (f *fakeController) HardDrop() (int, engine.StepResult) {
	f.record("drop")
	return 3, engine.StepResult{Moved: true, Landed: true}
}

func (f *fakeController) Restart() {
	f.record("restart")
	f.gameOver = false
}

func (f *fakeController) GameOver() bool { return f.gameOver }

func TestDispatchTable(t *testing.T) {
	ctrl := &fakeController{}
	d := input.NewDispatcher(ctrl)

	for _, a := range []input.Action{input.MoveLeft, input.MoveRight, input.SoftDrop, input.Rotate, input.HardDrop} {
		assert.True(t, d.Dispatch(a), "action %s", a)
	}

	assert.Equal(t, []string{"left", "right", "down", "rotate", "drop"}, ctrl.calls)
}

func TestRestartOnlyWhileGameOver(t *testing.T) {
	ctrl := &fakeController{}
	d := input.NewDispatcher(ctrl)

	assert.False(t, d.Enabled(input.Restart))
	assert.False(t, d.Dispatch(input.Restart))
	assert.Empty(t, ctrl.calls)

	ctrl.gameOver = true
	assert.True(t, d.Enabled(input.Restart))
	assert.True(t, d.Dispatch(input.Restart))
	assert.Equal(t, []string{"restart"}, ctrl.calls)
	assert.False(t, ctrl.gameOver)
}

func TestMovementIgnoredWhileGameOver(t *testing.T) {
	ctrl := &fakeController{gameOver: true}
	d := input.NewDispatcher(ctrl)

	for _, a := range []input.Action{input.MoveLeft, input.MoveRight, input.SoftDrop, input.Rotate, input.HardDrop} {
		assert.False(t, d.Enabled(a))
		assert.False(t, d.Dispatch(a))
	}
	assert.Empty(t, ctrl.calls)
}

func TestOnChange(t *testing.T) {
	ctrl := &fakeController{}
	d := input.NewDispatcher(ctrl)

	var rendered []input.Action
	d.OnChange = func(a input.Action) {
		rendered = append(rendered, a)
	}

	d.Dispatch(input.MoveLeft)
	ctrl.blocked = true
	d.Dispatch(input.MoveRight)
	d.Dispatch(input.HardDrop)

	assert.Equal(t, []input.Action{input.MoveLeft, input.HardDrop}, rendered)
}

func TestUnknownAction(t *testing.T) {
	d := input.NewDispatcher(&fakeController{})
	assert.False(t, d.Dispatch(input.Action(42)))
}

func TestDispatchAgainstEngine(t *testing.T) {
	e, err := engine.New(engine.WithRand(engine.KindSource(engine.KindO)))
	require.NoError(t, err)
	d := input.NewDispatcher(e)

	for range 10 {
		d.Dispatch(input.MoveLeft)
	}
	p, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, 0, p.X)

	for !e.GameOver() {
		require.True(t, d.Dispatch(input.HardDrop))
	}
	assert.False(t, d.Dispatch(input.MoveRight))
	assert.True(t, d.Dispatch(input.Restart))
	assert.False(t, e.GameOver())
}
