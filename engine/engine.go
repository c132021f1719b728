// Package engine implements the game state of a falling-block puzzle: a
// fixed board, the active piece, collision, line clearing, and the step and
// input operations that drive them.
//
// An Engine is not safe for concurrent use. Callers serialize every call onto
// one logical thread, typically their UI loop.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"
)

const (
	DefaultRows = 20
	DefaultCols = 10
)

// ErrInvalidConfig is returned by New and NewBoard for unusable parameters.
var ErrInvalidConfig = errors.New("invalid engine configuration")

// RandomSource picks shape indices. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// KindSource is a RandomSource that always picks the same table index.
type KindSource Kind

func (k KindSource) IntN(n int) int {
	return int(k) % n
}

// NewRand returns a PCG-backed source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Piece is the falling piece: its current rotation state, color identity and
// top-left anchor in board coordinates.
type Piece struct {
	Kind   Kind
	Matrix Matrix
	X, Y   int
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	cells := p.Matrix.Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// StepResult describes what a Step or HardDrop did.
type StepResult struct {
	Moved   bool
	Landed  bool
	Cleared int
}

// Engine owns the board, the active piece and the game-over flag.
type Engine struct {
	board    *Board
	shapes   []Shape
	rng      RandomSource
	logger   *log.Logger
	active   *Piece
	gameOver bool
	stats    *statsRecorder
}

type Option func(*Engine) error

// WithSize sets the board dimensions.
func WithSize(rows, cols int) Option {
	return func(e *Engine) error {
		b, err := NewBoard(rows, cols)
		if err != nil {
			return err
		}
		e.board = b
		return nil
	}
}

// WithShapes replaces the shape table.
func WithShapes(shapes []Shape) Option {
	return func(e *Engine) error {
		if len(shapes) == 0 {
			return fmt.Errorf("%w: empty shape table", ErrInvalidConfig)
		}
		e.shapes = make([]Shape, len(shapes))
		for i, s := range shapes {
			if s.Kind > MaxKind {
				return fmt.Errorf("%w: shape kind %d exceeds %d", ErrInvalidConfig, s.Kind, MaxKind)
			}
			if len(s.Matrix.Cells()) == 0 {
				return fmt.Errorf("%w: shape %s has no cells", ErrInvalidConfig, s.Kind)
			}
			for _, row := range s.Matrix {
				if len(row) != s.Matrix.Cols() {
					return fmt.Errorf("%w: shape %s is not rectangular", ErrInvalidConfig, s.Kind)
				}
			}
			e.shapes[i] = Shape{Kind: s.Kind, Matrix: s.Matrix.Clone()}
		}
		return nil
	}
}

// WithRand injects the source used to pick each spawned shape.
func WithRand(r RandomSource) Option {
	return func(e *Engine) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidConfig)
		}
		e.rng = r
		return nil
	}
}

// WithLogger enables diagnostic logging of spawns, clears and game over.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) error {
		if l != nil {
			e.logger = l
		}
		return nil
	}
}

// New builds an engine and spawns the first piece.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		shapes: StandardShapes(),
		logger: log.New(io.Discard, "", 0),
		stats:  newStatsRecorder(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.board == nil {
		e.board, _ = NewBoard(DefaultRows, DefaultCols)
	}
	if e.rng == nil {
		e.rng = NewRand(uint64(time.Now().UnixNano()))
	}

	for _, s := range e.shapes {
		if s.Matrix.Cols() > e.board.Cols() {
			return nil, fmt.Errorf("%w: shape %s is %d wide, board has %d columns",
				ErrInvalidConfig, s.Kind, s.Matrix.Cols(), e.board.Cols())
		}
	}

	e.spawn()
	return e, nil
}

func (e *Engine) spawn() {
	shape := e.shapes[e.rng.IntN(len(e.shapes))]
	piece := &Piece{
		Kind:   shape.Kind,
		Matrix: shape.Matrix,
		X:      e.board.Cols()/2 - shape.Matrix.Cols()/2,
		Y:      0,
	}
	if e.Collides(piece.Matrix, piece.X, piece.Y) {
		e.active = nil
		e.gameOver = true
		e.logger.Printf("[Engine] game over: %s cannot spawn at (%d,%d)", piece.Kind, piece.X, piece.Y)
		return
	}
	e.active = piece
	e.stats.spawned(shape.Kind)
}

// Collides reports whether matrix anchored at (x, y) leaves the board
// horizontally, passes the floor, or overlaps an occupied cell. Cells above
// row 0 are only checked against the side walls.
func (e *Engine) Collides(m Matrix, x, y int) bool {
	for r := range m {
		for c, filled := range m[r] {
			if !filled {
				continue
			}

			bx := x + c
			by := y + r

			if bx < 0 || bx >= e.board.Cols() || by >= e.board.Rows() {
				return true
			}

			if by >= 0 && e.board.At(by, bx).Occupied() {
				return true
			}
		}
	}
	return false
}

// Move shifts the active piece by (dx, dy) if the destination is free.
func (e *Engine) Move(dx, dy int) bool {
	if e.gameOver || e.active == nil {
		return false
	}
	if e.Collides(e.active.Matrix, e.active.X+dx, e.active.Y+dy) {
		return false
	}
	e.active.X += dx
	e.active.Y += dy
	return true
}

func (e *Engine) MoveLeft() bool  { return e.Move(-1, 0) }
func (e *Engine) MoveRight() bool { return e.Move(1, 0) }
func (e *Engine) SoftDrop() bool  { return e.Move(0, 1) }

// Rotate turns the active piece clockwise in place. The rotation is dropped
// when the new orientation collides at the current anchor.
func (e *Engine) Rotate() bool {
	if e.gameOver || e.active == nil {
		return false
	}
	rotated := e.active.Matrix.Rotate()
	if e.Collides(rotated, e.active.X, e.active.Y) {
		return false
	}
	e.active.Matrix = rotated
	return true
}

func (e *Engine) mergeAndClear() int {
	cell := CellOf(e.active.Kind)
	for _, p := range e.active.Cells() {
		if p.Y >= 0 {
			e.board.Set(p.Y, p.X, cell)
		}
	}
	e.active = nil

	cleared := e.board.ClearFullRows()
	e.stats.merged(cleared)
	if cleared > 0 {
		e.logger.Printf("[Engine] cleared %d rows", cleared)
	}
	return cleared
}

func (e *Engine) land() StepResult {
	cleared := e.mergeAndClear()
	e.spawn()
	return StepResult{Landed: true, Cleared: cleared}
}

// Step advances the falling piece by one row, or lands it when it cannot
// fall: merge, clear complete rows, spawn the next piece.
func (e *Engine) Step() StepResult {
	if e.gameOver || e.active == nil {
		return StepResult{}
	}
	if e.Move(0, 1) {
		return StepResult{Moved: true}
	}
	return e.land()
}

// HardDrop drops the active piece to its lowest legal row and lands it.
// The piece is merged and the next one spawned exactly once.
func (e *Engine) HardDrop() (int, StepResult) {
	if e.gameOver || e.active == nil {
		return 0, StepResult{}
	}
	distance := 0
	for e.Move(0, 1) {
		distance++
	}
	res := e.land()
	res.Moved = distance > 0
	return distance, res
}

// Restart empties the board, clears game over and spawns a fresh piece.
func (e *Engine) Restart() {
	e.board.Reset()
	e.gameOver = false
	e.active = nil
	e.stats.restarted()
	e.logger.Printf("[Engine] restart")
	e.spawn()
}

// GameOver reports whether the last spawn failed.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Active returns a copy of the falling piece. ok is false once the game is over.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	p := *e.active
	p.Matrix = p.Matrix.Clone()
	return p, true
}

func (e *Engine) Rows() int { return e.board.Rows() }
func (e *Engine) Cols() int { return e.board.Cols() }

// GhostY returns the row the active piece would land on if hard-dropped.
func (e *Engine) GhostY() (int, bool) {
	if e.active == nil {
		return 0, false
	}
	y := e.active.Y
	for !e.Collides(e.active.Matrix, e.active.X, y+1) {
		y++
	}
	return y, true
}
