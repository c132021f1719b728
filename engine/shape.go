package engine

import (
	"fmt"
	"math"
)

// Kind identifies one of the seven polyominoes. It doubles as the piece's
// color identity: merged blocks remember the Kind they came from.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of distinct kinds in the standard table.
const KindCount = 7

// MaxKind is the largest kind a custom shape table may use. Cells store
// kind+1 in a byte, so one value is given up to Empty.
const MaxKind Kind = math.MaxUint8 - 1

var kindNames = [KindCount]string{"I", "O", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a single letter back to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Matrix is a row-major occupancy grid. Row 0 is the top of the bounding box.
type Matrix [][]bool

// Rows returns the height of the bounding box.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the width of the bounding box.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Rotate returns a new matrix rotated 90 degrees clockwise. An R×C matrix
// becomes C×R with result[c][R-1-r] = m[r][c]. The receiver is not modified.
func (m Matrix) Rotate() Matrix {
	rows, cols := m.Rows(), m.Cols()
	rotated := make(Matrix, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
	}

	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = m[r][c]
		}
	}

	return rotated
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]bool, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}

// Cells lists the occupied (col, row) offsets in row-major order.
func (m Matrix) Cells() []Point {
	var cells []Point
	for r := range m {
		for c, filled := range m[r] {
			if filled {
				cells = append(cells, Point{X: c, Y: r})
			}
		}
	}
	return cells
}

// Equal reports whether both matrices have the same dimensions and occupancy.
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for r := range m {
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Point is a column/row pair.
type Point struct {
	X, Y int
}

// Shape is an immutable table entry: a base orientation and its color identity.
type Shape struct {
	Kind   Kind
	Matrix Matrix
}

func parseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for r, row := range rows {
		m[r] = make([]bool, len(row))
		for c, ch := range row {
			m[r][c] = ch == '#'
		}
	}
	return m
}

var standardShapes = []Shape{
	{Kind: KindI, Matrix: parseMatrix("####")},
	{Kind: KindO, Matrix: parseMatrix("##", "##")},
	{Kind: KindT, Matrix: parseMatrix("###", ".#.")},
	{Kind: KindL, Matrix: parseMatrix("###", "#..")},
	{Kind: KindJ, Matrix: parseMatrix("###", "..#")},
	{Kind: KindS, Matrix: parseMatrix(".##", "##.")},
	{Kind: KindZ, Matrix: parseMatrix("##.", ".##")},
}

// StandardShapes returns a copy of the seven-piece table, indexed by Kind.
func StandardShapes() []Shape {
	out := make([]Shape, len(standardShapes))
	for i, s := range standardShapes {
		out[i] = Shape{Kind: s.Kind, Matrix: s.Matrix.Clone()}
	}
	return out
}
