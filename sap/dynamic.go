// Package sap: dynamic repair of a solved assignment.
//
// Both helpers start from a complete optimal state and reuse the augment
// primitive on a freshly reset frontier instead of re-solving from scratch:
// one augment step is enough because withdrawing a single row or column
// frees exactly one endpoint of the matching.

package sap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lapgo/lapmat"
)

// SolveWithRemovedRow repairs st after logically removing removedRow from
// the problem: the removed row keeps a placeholder assignment at zero cost
// while every other row ends up optimally assigned as if the row never
// existed. cost itself is not modified; duals are updated as if the removed
// row's costs were uniformly zero.
//
// The repair runs on the square sub-problem restricted to the nr columns of
// the current assignment: the removed row's column is freed, its dual is
// repriced to keep reduced costs non-negative, and a single augment from
// the removed row restores a complete matching. Results are then written
// back through the original column indices.
//
// Preconditions (validated before any mutation): st matches cost's shape,
// every row is assigned, removedRow ∈ [0, nr).
//
// Complexity: O(nr² + nr·nc) time, O(nr²) space for the sub-matrix.
func SolveWithRemovedRow(cost *lapmat.Dense, removedRow int, st *State, opts ...Option) error {
	if cost == nil {
		return ErrNilMatrix
	}
	nr, nc := cost.Rows(), cost.Cols()
	if err := st.validate(nr, nc); err != nil {
		return err
	}
	if removedRow < 0 || removedRow >= nr {
		return fmt.Errorf("SolveWithRemovedRow: row=%d, nr=%d: %w", removedRow, nr, ErrRowOutOfRange)
	}
	var i int
	for i = 0; i < nr; i++ {
		if st.Col4Row[i] == Unassigned {
			return fmt.Errorf("SolveWithRemovedRow: row %d unassigned: %w", i, ErrBadAssignment)
		}
	}

	// Reprice the removed row as if its costs were uniformly zero:
	// u[removed] = min_j (0 − v[j]).
	uMin := math.Inf(1)
	var j int
	for j = 0; j < nc; j++ {
		if -st.V[j] < uMin {
			uMin = -st.V[j]
		}
	}
	st.U[removedRow] = uMin

	// Build the square sub-problem over the assigned columns. Sub-column k
	// stands for original column Col4Row[k], so the removed row and its
	// freed column share the index removedRow.
	sub, err := lapmat.NewDense(nr, nr)
	if err != nil {
		return err
	}
	subV := make([]float64, nr)
	var k int
	var c float64
	for k = 0; k < nr; k++ {
		orig := st.Col4Row[k]
		subV[k] = st.V[orig]
		for i = 0; i < nr; i++ {
			if i == removedRow {
				c = 0
			} else {
				c = cost.Row(i)[orig]
			}
			_ = sub.Set(i, k, c)
		}
	}

	subCol4Row := make([]int64, nr)
	subRow4Col := make([]int64, nr)
	for k = 0; k < nr; k++ {
		subCol4Row[k] = int64(k)
		subRow4Col[k] = int64(k)
	}
	subCol4Row[removedRow] = Unassigned
	subRow4Col[removedRow] = Unassigned

	// One augment step on the sub-problem re-completes the matching.
	// U is shared: sub-problem rows are the original rows.
	subState := &State{U: st.U, V: subV, Col4Row: subCol4Row, Row4Col: subRow4Col}
	s := newScratch(nr, nr)
	s.reset()
	if err = augmentStep(sub, removedRow, subState, s); err != nil {
		return fmt.Errorf("SolveWithRemovedRow: %w", err)
	}

	// Write the repaired sub-solution back through the original column
	// indices. Everything that indexes through the old Col4Row is resolved
	// against a snapshot taken before Col4Row itself is rewritten.
	oldCol4Row := append([]int64(nil), st.Col4Row...)
	for k = 0; k < nr; k++ {
		st.Row4Col[oldCol4Row[k]] = subRow4Col[k]
		st.V[oldCol4Row[k]] = subV[k]
	}
	for i = 0; i < nr; i++ {
		st.Col4Row[i] = oldCol4Row[subCol4Row[i]]
	}

	return nil
}

// SolveWithRemovedCol repairs st after withdrawing removedCol from the
// problem. cost itself is not modified; the column is forbidden on a copy
// (+∞) and the row it was holding is re-augmented from a fresh frontier.
// A no-op when the column was not part of the matching.
//
// Returns ErrInfeasible when the remaining columns cannot absorb the freed
// row (for instance on a square matrix); st is then unspecified.
//
// Complexity: O(nr·nc) time, O(nr·nc) space for the forbidden copy.
func SolveWithRemovedCol(cost *lapmat.Dense, removedCol int, st *State, opts ...Option) error {
	if cost == nil {
		return ErrNilMatrix
	}
	nr, nc := cost.Rows(), cost.Cols()
	if err := st.validate(nr, nc); err != nil {
		return err
	}
	if removedCol < 0 || removedCol >= nc {
		return fmt.Errorf("SolveWithRemovedCol: col=%d, nc=%d: %w", removedCol, nc, ErrColOutOfRange)
	}

	// Nothing to repair if the column is outside the matching.
	rowFreed := st.Row4Col[removedCol]
	if rowFreed == Unassigned {
		return nil
	}

	// Forbid the column on a copy and free both endpoints.
	forbidden := cost.Clone()
	var i int
	for i = 0; i < nr; i++ {
		_ = forbidden.Set(i, removedCol, math.Inf(1))
	}
	st.Col4Row[rowFreed] = Unassigned
	st.Row4Col[removedCol] = Unassigned

	// Re-augment the freed row against the reduced column set.
	return Augment(forbidden, int(rowFreed), st, opts...)
}
