package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanTraversal(t *testing.T) {
	tests := []struct {
		name string
		dir  Vector
		rows []int
		cols []int
	}{
		{"up", Up, []int{0, 1, 2}, []int{0, 1, 2, 3}},
		{"down", Down, []int{2, 1, 0}, []int{0, 1, 2, 3}},
		{"left", Left, []int{0, 1, 2}, []int{0, 1, 2, 3}},
		{"right", Right, []int{0, 1, 2}, []int{3, 2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trav := PlanTraversal(3, 4, tt.dir)
			assert.Equal(t, tt.rows, trav.Rows)
			assert.Equal(t, tt.cols, trav.Cols)
		})
	}
}

func TestTraversalCellsRowsOutermost(t *testing.T) {
	trav := PlanTraversal(2, 2, Right)

	expected := []Location{{0, 1}, {0, 0}, {1, 1}, {1, 0}}
	assert.Equal(t, expected, trav.Cells())
}
