package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsNonPositiveSize(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 10},
		{20, 0},
		{-1, 10},
		{20, -5},
	}

	for _, tt := range tests {
		_, err := NewBoard(tt.rows, tt.cols)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "size %dx%d", tt.rows, tt.cols)
	}
}

func TestBoardSetAndAt(t *testing.T) {
	b, err := NewBoard(4, 3)
	require.NoError(t, err)

	b.Set(2, 1, CellOf(KindT))
	assert.Equal(t, CellOf(KindT), b.At(2, 1))
	assert.True(t, b.At(2, 1).Occupied())

	k, ok := b.At(2, 1).Kind()
	assert.True(t, ok)
	assert.Equal(t, KindT, k)

	// Out of range reads are empty and writes are dropped.
	b.Set(-1, 0, CellOf(KindI))
	b.Set(0, 3, CellOf(KindI))
	assert.Equal(t, Empty, b.At(-1, 0))
	assert.Equal(t, Empty, b.At(4, 0))
	assert.Equal(t, "...\n...\n.T.\n...\n", b.String())
}

func TestBoardClearFullRows(t *testing.T) {
	b, err := ParseBoard(`
		.I..
		OOOO
		.S..
		ZZZZ
		TTTT`)
	require.NoError(t, err)

	cleared := b.ClearFullRows()
	assert.Equal(t, 3, cleared)
	assert.Equal(t, "....\n....\n....\n.I..\n.S..\n", b.String())
}

func TestBoardClearFullRowsEmptyTop(t *testing.T) {
	b, err := ParseBoard(`
		LLL
		...
		JJJ`)
	require.NoError(t, err)

	assert.Equal(t, 2, b.ClearFullRows())
	assert.Equal(t, "...\n...\n...\n", b.String())
}

func TestBoardResetAndClone(t *testing.T) {
	b, err := ParseBoard("I.\n.O")
	require.NoError(t, err)

	c := b.Clone()
	b.Reset()

	assert.Equal(t, "..\n..\n", b.String())
	assert.Equal(t, "I.\n.O\n", c.String())
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard("...\n..")
	assert.Error(t, err)

	_, err = ParseBoard("..X")
	assert.Error(t, err)

	b, err := ParseBoard("#.")
	require.NoError(t, err)
	assert.Equal(t, CellOf(KindI), b.At(0, 0))
}
