package editdist

// grid is a dense rows×cols table of ints in a single allocation,
// stored row-major. It centralizes the 2D index arithmetic for the
// DP tables of both distance functions.
type grid struct {
	cols  int
	cells []int
}

func newGrid(rows, cols, initial int) grid {
	g := grid{cols: cols, cells: make([]int, rows*cols)}
	if initial != 0 {
		for i := range g.cells {
			g.cells[i] = initial
		}
	}
	return g
}

func (g grid) get(row, col int) int { return g.cells[row*g.cols+col] }

func (g grid) set(row, col, v int) { g.cells[row*g.cols+col] = v }
