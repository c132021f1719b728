package engine

import "strings"

// Layer says where a composited cell came from.
type Layer uint8

const (
	LayerEmpty Layer = iota
	LayerBoard
	LayerActive
	LayerGhost
)

// Snapshot is an immutable copy of the engine state for renderers.
type Snapshot struct {
	Rows     int
	Cols     int
	GameOver bool

	// Active is valid when HasActive is true.
	Active    Piece
	HasActive bool
	// GhostY is the landing row of Active.
	GhostY int

	cells []Cell
	layer []Layer
}

// Snapshot copies the current state. The result does not alias engine memory.
func (e *Engine) Snapshot() Snapshot {
	rows, cols := e.board.Rows(), e.board.Cols()
	s := Snapshot{
		Rows:     rows,
		Cols:     cols,
		GameOver: e.gameOver,
		cells:    make([]Cell, rows*cols),
		layer:    make([]Layer, rows*cols),
	}
	copy(s.cells, e.board.cells)
	for i, c := range s.cells {
		if c.Occupied() {
			s.layer[i] = LayerBoard
		}
	}

	piece, ok := e.Active()
	if !ok {
		return s
	}
	s.Active = piece
	s.HasActive = true
	s.GhostY, _ = e.GhostY()

	ghost := piece
	ghost.Y = s.GhostY
	s.paint(ghost, LayerGhost)
	s.paint(piece, LayerActive)
	return s
}

func (s *Snapshot) paint(p Piece, layer Layer) {
	cell := CellOf(p.Kind)
	for _, pt := range p.Cells() {
		if pt.Y < 0 || pt.Y >= s.Rows || pt.X < 0 || pt.X >= s.Cols {
			continue
		}
		i := pt.Y*s.Cols + pt.X
		if s.layer[i] == LayerBoard {
			continue
		}
		s.cells[i] = cell
		s.layer[i] = layer
	}
}

// At returns the composited cell at (row, col): the active piece and its ghost
// drawn over the landed blocks.
func (s Snapshot) At(row, col int) (Cell, Layer) {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return Empty, LayerEmpty
	}
	i := row*s.Cols + col
	return s.cells[i], s.layer[i]
}

// BoardAt returns only the landed block at (row, col), ignoring the active piece.
func (s Snapshot) BoardAt(row, col int) Cell {
	c, layer := s.At(row, col)
	if layer != LayerBoard {
		return Empty
	}
	return c
}

// String renders the composite one row per line. Landed blocks use the kind
// letter, the active piece '@' and the ghost ':'.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(s.Rows * (s.Cols + 1))
	for row := range s.Rows {
		for col := range s.Cols {
			c, layer := s.At(row, col)
			switch layer {
			case LayerActive:
				sb.WriteByte('@')
			case LayerGhost:
				sb.WriteByte(':')
			default:
				sb.WriteByte(cellRune(c))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
