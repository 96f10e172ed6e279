// Package sap: solver state and configuration options.

package sap

import (
	"fmt"

	"github.com/katalvlaran/lapgo/lapmat"
)

// Unassigned is the sentinel stored in Col4Row/Row4Col for a row or column
// that is not part of the current matching. Index buffers are int64 so the
// sentinel and nr·nc-sized indices share one representation on every
// platform.
const Unassigned int64 = -1

// State holds the dual variables and the partial assignment maintained by
// the solver. All four buffers are mutated in place by Augment and owned
// exclusively by the solver for the duration of a Solve; they may be
// borrowed back by the caller afterwards. Concurrent solves must use
// disjoint State values.
//
// Invariants between augment steps:
//   - Col4Row[i] ∈ {Unassigned} ∪ [0, nc); Row4Col[j] ∈ {Unassigned} ∪ [0, nr).
//   - Mutual inversion: Col4Row[i] = j ⇔ Row4Col[j] = i.
//   - Complementary slackness over assigned rows:
//     C[i,j] − U[i] − V[j] ≥ 0, with equality when Col4Row[i] = j.
type State struct {
	U       []float64 // row duals, length nr
	V       []float64 // column duals, length nc
	Col4Row []int64   // column assigned to each row, length nr
	Row4Col []int64   // row assigned to each column, length nc
}

// NewState allocates a fresh solver state for an nr×nc problem:
// duals zeroed, every row and column unassigned.
// Returns lapmat.ErrBadShape for non-positive dimensions and ErrTooManyRows
// when nc < nr.
// Complexity: O(nr + nc).
func NewState(nr, nc int) (*State, error) {
	if nr <= 0 || nc <= 0 {
		return nil, lapmat.ErrBadShape
	}
	if nc < nr {
		return nil, ErrTooManyRows
	}

	st := &State{
		U:       make([]float64, nr),
		V:       make([]float64, nc),
		Col4Row: make([]int64, nr),
		Row4Col: make([]int64, nc),
	}
	var i int
	for i = range st.Col4Row {
		st.Col4Row[i] = Unassigned
	}
	for i = range st.Row4Col {
		st.Row4Col[i] = Unassigned
	}

	return st, nil
}

// Clone returns a deep copy of the state. Callers that need atomicity
// across a possibly infeasible augment snapshot first and restore on error.
// Complexity: O(nr + nc).
func (st *State) Clone() *State {
	cp := &State{
		U:       append([]float64(nil), st.U...),
		V:       append([]float64(nil), st.V...),
		Col4Row: append([]int64(nil), st.Col4Row...),
		Row4Col: append([]int64(nil), st.Row4Col...),
	}

	return cp
}

// TotalCost sums C[i, Col4Row[i]] over all rows.
// Returns ErrBadState if the state does not match the matrix shape and
// ErrBadAssignment if any row is unassigned.
// Complexity: O(nr).
func (st *State) TotalCost(cost *lapmat.Dense) (float64, error) {
	if err := lapmat.ValidateNotNil(cost); err != nil {
		return 0, err
	}
	if len(st.Col4Row) != cost.Rows() || len(st.V) != cost.Cols() {
		return 0, ErrBadState
	}

	var total float64
	var i int
	var j int64
	for i, j = range st.Col4Row {
		if j == Unassigned {
			return 0, fmt.Errorf("TotalCost: row %d unassigned: %w", i, ErrBadAssignment)
		}
		total += cost.Row(i)[j]
	}

	return total, nil
}

// validate checks that the state buffers fit an nr×nc problem and that all
// assignment entries are in range. Mutual inversion is a documented
// precondition, not re-verified on every call.
// Complexity: O(nr + nc).
func (st *State) validate(nr, nc int) error {
	if st == nil || len(st.U) != nr || len(st.V) != nc ||
		len(st.Col4Row) != nr || len(st.Row4Col) != nc {
		return ErrBadState
	}

	var i int
	var j int64
	for i, j = range st.Col4Row {
		if j != Unassigned && (j < 0 || j >= int64(nc)) {
			return fmt.Errorf("Col4Row[%d]=%d: %w", i, j, ErrBadAssignment)
		}
	}
	for i, j = range st.Row4Col {
		if j != Unassigned && (j < 0 || j >= int64(nr)) {
			return fmt.Errorf("Row4Col[%d]=%d: %w", i, j, ErrBadAssignment)
		}
	}

	return nil
}

// Options configures the behavior of the SAP solver entry points.
//
// Verbose – emit per-step progress diagnostics (duals and assignments after
// every augment) to the shared logger sink. Off by default; the exact
// format is diagnostic output, not part of the contract.
type Options struct {
	Verbose bool // Whether to log duals/assignments after each augment step
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithVerbose enables progress diagnostics on the logger sink.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
// Use this as a starting point for further functional-option overrides.
//
// Defaults:
//   - Verbose: false (no diagnostic output).
func DefaultOptions() Options {
	return Options{
		Verbose: false,
	}
}
