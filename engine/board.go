package engine

import (
	"fmt"
	"strings"
)

// Cell is the content of one board square: Empty or the color identity of
// the piece that left a block there.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// CellOf returns the occupied cell value for a kind. k must not exceed
// MaxKind.
func CellOf(k Kind) Cell {
	return Cell(k) + 1
}

// Kind returns the color identity stored in the cell. ok is false for Empty.
func (c Cell) Kind() (k Kind, ok bool) {
	if c == Empty {
		return 0, false
	}
	return Kind(c - 1), true
}

// Occupied reports whether the cell holds a block.
func (c Cell) Occupied() bool {
	return c != Empty
}

// Board is a fixed rows×cols grid stored row-major in a flat slice.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard allocates an empty board. Dimensions must be positive.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) addresses a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col). Out-of-range coordinates read as Empty.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

// Set writes a cell. Out-of-range writes are ignored.
func (b *Board) Set(row, col int, c Cell) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[row*b.cols+col] = c
}

func (b *Board) row(r int) []Cell {
	return b.cells[r*b.cols : (r+1)*b.cols]
}

// RowFull reports whether every column of row r is occupied.
func (b *Board) RowFull(r int) bool {
	for _, c := range b.row(r) {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every complete row, collapsing the rows above it and
// back-filling empty rows at the top. Rows are scanned bottom-to-top and an
// index is re-examined after each collapse. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for r := b.rows - 1; r >= 0; r-- {
		if !b.RowFull(r) {
			continue
		}
		cleared++
		copy(b.cells[b.cols:(r+1)*b.cols], b.cells[:r*b.cols])
		clear(b.row(0))
		r++
	}
	return cleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	out := &Board{rows: b.rows, cols: b.cols, cells: make([]Cell, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}

// String renders the board one row per line: '.' for empty cells and the
// kind letter for occupied ones.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := range b.rows {
		for _, c := range b.row(r) {
			sb.WriteByte(cellRune(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	k, ok := c.Kind()
	if !ok {
		return '.'
	}
	if int(k) < len(kindNames) {
		return kindNames[k][0]
	}
	return '#'
}

// ParseBoard builds a board from the String form. Every line must have the
// same width; '#' is accepted as an occupied cell of kind I.
func ParseBoard(text string) (*Board, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	b, err := NewBoard(len(lines), len(lines[0]))
	if err != nil {
		return nil, err
	}

	for r, line := range lines {
		if len(line) != b.cols {
			return nil, fmt.Errorf("row %d: width %d, want %d", r, len(line), b.cols)
		}
		for col, ch := range line {
			switch ch {
			case '.':
			case '#':
				b.Set(r, col, CellOf(KindI))
			default:
				k, err := ParseKind(string(ch))
				if err != nil {
					return nil, fmt.Errorf("row %d col %d: %w", r, col, err)
				}
				b.Set(r, col, CellOf(k))
			}
		}
	}
	return b, nil
}
