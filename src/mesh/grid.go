package mesh

import "fmt"

// Grid is a dense 2D array of node or panel ids, row-major over a flat
// backing slice. Rows index the chordwise direction, columns the spanwise
// direction; the last row is the trailing edge.
type Grid struct {
	rows, cols int
	ids        []int
}

func NewGrid(rows, cols int) Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mesh: negative grid dimensions %dx%d", rows, cols))
	}
	return Grid{rows: rows, cols: cols, ids: make([]int, rows*cols)}
}

func (g Grid) Rows() int { return g.rows }

func (g Grid) Cols() int { return g.cols }

func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the id at (row, col). The position must be in bounds.
func (g Grid) At(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("mesh: grid index (%d, %d) out of range %dx%d", row, col, g.rows, g.cols))
	}
	return g.ids[row*g.cols+col]
}

// Set stores id at (row, col). The position must be in bounds.
func (g Grid) Set(row, col, id int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("mesh: grid index (%d, %d) out of range %dx%d", row, col, g.rows, g.cols))
	}
	g.ids[row*g.cols+col] = id
}
