package input_test

import (
	"testing"

	"github.com/plus3/stackfall/input"
	"github.com/stretchr/testify/assert"
)

func TestQueueFlushesInOrder(t *testing.T) {
	ctrl := &fakeController{}
	d := input.NewDispatcher(ctrl)
	q := input.NewQueue()

	q.Push(input.Rotate)
	q.Push(input.MoveLeft)
	q.Push(input.MoveLeft)
	q.Push(input.SoftDrop)
	assert.Equal(t, 4, q.Len())
	assert.Empty(t, ctrl.calls, "nothing runs before flush")

	changed := q.Flush(d)
	assert.Equal(t, 4, changed)
	assert.Equal(t, []string{"rotate", "left", "left", "down"}, ctrl.calls)
	assert.Equal(t, 0, q.Len())

	assert.Equal(t, 0, q.Flush(d))
	assert.Len(t, ctrl.calls, 4)
}

func TestQueueGatingFollowsStateDuringFlush(t *testing.T) {
	ctrl := &fakeController{gameOver: true}
	d := input.NewDispatcher(ctrl)
	q := input.NewQueue()

	// Restart clears game over, so the move queued after it is honored.
	q.Push(input.MoveLeft)
	q.Push(input.Restart)
	q.Push(input.MoveLeft)

	assert.Equal(t, 2, q.Flush(d))
	assert.Equal(t, []string{"restart", "left"}, ctrl.calls)
}

func TestQueueReset(t *testing.T) {
	ctrl := &fakeController{}
	d := input.NewDispatcher(ctrl)
	q := input.NewQueue()

	q.Push(input.HardDrop)
	q.Reset()

	assert.Equal(t, 0, q.Flush(d))
	assert.Empty(t, ctrl.calls)
}
