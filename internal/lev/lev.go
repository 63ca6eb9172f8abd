// Package lev holds the dynamic-programming kernels behind the public
// distance API: a single rolling row for scalar distances and a full
// (m+1)×(n+1) grid when the caller wants every cell.
//
// All kernels take the three operation weights explicitly. With the
// default weights (insert 1, delete 1, replace 2) a substitution never
// beats a delete plus an insert, so the distance equals m+n-2·LCS.
package lev

// Runes returns the weighted edit distance between two rune slices.
//
// row[j] holds the distance between the consumed prefix of a and b[:j];
// the previous row survives only as row[j] (up) and prev (diagonal).
// Empty inputs need no dedicated path: an empty a skips the outer loop
// and leaves the cumulative-insert row, an empty b reduces the row to
// its cumulative-delete head cell.
func Runes(a, b []rune, ins, del, sub int) int {
	// Keep the shorter side on the row axis. Swapping operands swaps
	// the roles of insert and delete, the distance is unchanged.
	if len(b) > len(a) {
		a, b = b, a
		ins, del = del, ins
	}

	row := make([]int, len(b)+1)
	for j := 1; j <= len(b); j++ {
		row[j] = row[j-1] + ins
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0] // table(i-1, 0)
		row[0] += del  // table(i, 0)
		for j := 1; j <= len(b); j++ {
			d := prev // diagonal, free on match
			if a[i-1] != b[j-1] {
				d += sub
				if t := row[j] + del; t < d {
					d = t
				}
				if t := row[j-1] + ins; t < d {
					d = t
				}
			}
			prev = row[j]
			row[j] = d
		}
	}
	return row[len(b)]
}

// Bytes is Runes over the raw bytes of two strings.
func Bytes(a, b string, ins, del, sub int) int {
	if len(b) > len(a) {
		a, b = b, a
		ins, del = del, ins
	}

	row := make([]int, len(b)+1)
	for j := 1; j <= len(b); j++ {
		row[j] = row[j-1] + ins
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] += del
		for j := 1; j <= len(b); j++ {
			d := prev
			if a[i-1] != b[j-1] {
				d += sub
				if t := row[j] + del; t < d {
					d = t
				}
				if t := row[j-1] + ins; t < d {
					d = t
				}
			}
			prev = row[j]
			row[j] = d
		}
	}
	return row[len(b)]
}

// TableRunes fills and returns the whole cost grid: rows follow a
// (the source), columns follow b (the target), cell (i,j) is the
// distance between a[:i] and b[:j].
func TableRunes(a, b []rune, ins, del, sub int) [][]int {
	t := make([][]int, len(a)+1)
	for i := range t {
		t[i] = make([]int, len(b)+1)
	}
	for j := 1; j <= len(b); j++ {
		t[0][j] = t[0][j-1] + ins
	}
	for i := 1; i <= len(a); i++ {
		t[i][0] = t[i-1][0] + del
		for j := 1; j <= len(b); j++ {
			d := t[i-1][j-1]
			if a[i-1] != b[j-1] {
				d += sub
				if u := t[i-1][j] + del; u < d {
					d = u
				}
				if l := t[i][j-1] + ins; l < d {
					d = l
				}
			}
			t[i][j] = d
		}
	}
	return t
}

// TableBytes is TableRunes over the raw bytes of two strings.
func TableBytes(a, b string, ins, del, sub int) [][]int {
	t := make([][]int, len(a)+1)
	for i := range t {
		t[i] = make([]int, len(b)+1)
	}
	for j := 1; j <= len(b); j++ {
		t[0][j] = t[0][j-1] + ins
	}
	for i := 1; i <= len(a); i++ {
		t[i][0] = t[i-1][0] + del
		for j := 1; j <= len(b); j++ {
			d := t[i-1][j-1]
			if a[i-1] != b[j-1] {
				d += sub
				if u := t[i-1][j] + del; u < d {
					d = u
				}
				if l := t[i][j-1] + ins; l < d {
					d = l
				}
			}
			t[i][j] = d
		}
	}
	return t
}
