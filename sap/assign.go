// Package sap: convenience wrapper with the classical (rowInd, colInd)
// result shape.

package sap

import (
	"sort"

	"github.com/katalvlaran/lapgo/lapmat"
)

// LinearSumAssignment solves the assignment problem for an arbitrary
// rectangular cost matrix and returns index pairs in the classical form:
// rowInd is sorted ascending and cost.At(rowInd[k], colInd[k]) enumerates
// the chosen entries. len(rowInd) == len(colInd) == min(nr, nc).
//
// Unlike the core Solve, this wrapper accepts nr > nc: it solves the
// transposed problem and maps the indices back, which is exactly the
// "caller transposes" contract applied on the caller's behalf. With
// maximize=true a negated copy of the matrix is solved; entry validation
// runs on the negated copy, so +∞ entries are rejected under maximization
// (they would become −∞ edges).
//
// Complexity: O(min(nr,nc)² · max(nr,nc)) time, O(nr·nc) extra space when
// transposing or maximizing, O(nr + nc) otherwise.
func LinearSumAssignment(cost *lapmat.Dense, maximize bool, opts ...Option) (rowInd, colInd []int64, err error) {
	// Validate presence before any copying.
	if cost == nil {
		return nil, nil, ErrNilMatrix
	}

	// Maximization solves the negated matrix.
	work := cost
	if maximize {
		work = cost.Scale(-1)
	}
	if err = lapmat.ValidateEntries(work); err != nil {
		return nil, nil, err
	}

	nr, nc := work.Rows(), work.Cols()

	// Wide-or-square matrices feed the core directly: rows are already the
	// smaller side, so rowInd is the identity.
	if nr <= nc {
		var st *State
		if st, err = Solve(work, opts...); err != nil {
			return nil, nil, err
		}
		rowInd = make([]int64, nr)
		colInd = make([]int64, nr)
		var i int
		for i = 0; i < nr; i++ {
			rowInd[i] = int64(i)
			colInd[i] = st.Col4Row[i]
		}

		return rowInd, colInd, nil
	}

	// Tall matrices: solve the transpose, where Col4Row maps each original
	// column to the original row it is assigned to. Sorting the pairs by
	// row index restores the classical ordering.
	var st *State
	if st, err = Solve(work.Transpose(), opts...); err != nil {
		return nil, nil, err
	}

	order := make([]int, nc)
	var k int
	for k = range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		return st.Col4Row[order[a]] < st.Col4Row[order[b]]
	})

	rowInd = make([]int64, nc)
	colInd = make([]int64, nc)
	for k = range order {
		rowInd[k] = st.Col4Row[order[k]]
		colInd[k] = int64(order[k])
	}

	return rowInd, colInd, nil
}
