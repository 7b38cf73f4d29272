package board

// Traversal is the cell visiting order for one move: every row of Rows
// crossed with every column of Cols, rows outermost.
type Traversal struct {
	Rows []int
	Cols []int
}

// PlanTraversal orders rows and columns so cells nearest the destination
// edge come first. A positive component reverses that axis.
func PlanTraversal(rows, cols int, dir Vector) Traversal {
	t := Traversal{
		Rows: indexRange(rows),
		Cols: indexRange(cols),
	}
	if dir.R > 0 {
		reverse(t.Rows)
	}
	if dir.C > 0 {
		reverse(t.Cols)
	}
	return t
}

// Cells expands the traversal into the flat visiting sequence.
func (t Traversal) Cells() []Location {
	cells := make([]Location, 0, len(t.Rows)*len(t.Cols))
	for _, r := range t.Rows {
		for _, c := range t.Cols {
			cells = append(cells, Location{R: r, C: c})
		}
	}
	return cells
}

func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
