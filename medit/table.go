package medit

import "github.com/Alfex4936/medit/internal/lev"

// maxTableCells caps full-table allocations. Lowered in tests.
var maxTableCells = 1 << 26

// Table is the retained (m+1)×(n+1) cost grid of one computation,
// where m and n are the element counts of source and target. Cell
// (i, j) holds the distance between the first i source elements and
// the first j target elements.
type Table struct {
	cells [][]int
}

// NewTable computes the full grid over code-point elements.
func NewTable(source, target string, c Costs) (*Table, error) {
	if !c.Valid() {
		return nil, ErrNegativeCost
	}
	a, b := []rune(source), []rune(target)
	if len(a)+1 > maxTableCells/(len(b)+1) {
		return nil, ErrTableTooLarge
	}
	return &Table{cells: lev.TableRunes(a, b, c.Insert, c.Delete, c.Replace)}, nil
}

// NewTableBytes computes the full grid over byte elements.
func NewTableBytes(source, target string, c Costs) (*Table, error) {
	if !c.Valid() {
		return nil, ErrNegativeCost
	}
	if len(source)+1 > maxTableCells/(len(target)+1) {
		return nil, ErrTableTooLarge
	}
	return &Table{cells: lev.TableBytes(source, target, c.Insert, c.Delete, c.Replace)}, nil
}

// Rows returns m+1.
func (t *Table) Rows() int { return len(t.cells) }

// Cols returns n+1.
func (t *Table) Cols() int { return len(t.cells[0]) }

// At returns cell (i, j). Panics when the indices are out of range,
// like any slice access.
func (t *Table) At(i, j int) int { return t.cells[i][j] }

// Distance returns the bottom-right cell, the distance between the
// complete source and target.
func (t *Table) Distance() int {
	return t.cells[len(t.cells)-1][len(t.cells[0])-1]
}

// Grid exposes the backing rows without copying. Callers must treat
// them as read-only.
func (t *Table) Grid() [][]int { return t.cells }
