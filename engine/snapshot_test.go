package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotComposite(t *testing.T) {
	e := newTestEngine(t, WithRand(always(KindO)))
	e.board.Set(19, 0, CellOf(KindZ))

	s := e.Snapshot()
	require.True(t, s.HasActive)
	assert.Equal(t, 18, s.GhostY)
	assert.False(t, s.GameOver)

	c, layer := s.At(0, 4)
	assert.Equal(t, CellOf(KindO), c)
	assert.Equal(t, LayerActive, layer)

	c, layer = s.At(19, 5)
	assert.Equal(t, CellOf(KindO), c)
	assert.Equal(t, LayerGhost, layer)

	c, layer = s.At(19, 0)
	assert.Equal(t, CellOf(KindZ), c)
	assert.Equal(t, LayerBoard, layer)

	assert.Equal(t, Empty, s.BoardAt(0, 4))
	assert.Equal(t, CellOf(KindZ), s.BoardAt(19, 0))

	c, layer = s.At(-1, 0)
	assert.Equal(t, Empty, c)
	assert.Equal(t, LayerEmpty, layer)
}

func TestSnapshotIsIndependent(t *testing.T) {
	e := newTestEngine(t, WithRand(always(KindT)))
	s := e.Snapshot()

	s.Active.Matrix[0][0] = false
	p, _ := e.Active()
	assert.True(t, p.Matrix[0][0])

	e.HardDrop()
	e.Rotate()

	assert.Equal(t, Empty, s.BoardAt(18, 4))
	assert.Equal(t, 0, s.Active.Y)
	assert.Equal(t, KindT, s.Active.Kind)
}

func TestSnapshotAfterGameOver(t *testing.T) {
	e := newTestEngine(t, WithRand(always(KindO)))
	for !e.GameOver() {
		e.HardDrop()
	}

	s := e.Snapshot()
	assert.True(t, s.GameOver)
	assert.False(t, s.HasActive)
	_, layer := s.At(0, 4)
	assert.Equal(t, LayerBoard, layer)
}

func TestSnapshotString(t *testing.T) {
	e := newTestEngine(t, WithSize(4, 4), WithRand(always(KindO)))
	e.board.Set(3, 0, CellOf(KindZ))

	assert.Equal(t, ".@@.\n.@@.\n.::.\nZ::.\n", e.Snapshot().String())
}
