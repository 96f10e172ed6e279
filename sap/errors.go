// Package sap: sentinel error set.
// All solver entry points return these sentinels (possibly wrapped with
// context via fmt.Errorf("...: %w", ...)); tests match them via errors.Is.
// Shape, state and index errors are raised before any mutation. On
// ErrInfeasible the caller-visible buffers are unspecified.

package sap

import "errors"

var (
	// ErrNilMatrix indicates that a nil cost matrix was passed to a solver
	// entry point.
	ErrNilMatrix = errors.New("sap: cost matrix is nil")

	// ErrTooManyRows indicates a cost matrix with more rows than columns.
	// The core requires nr ≤ nc; callers must transpose first (the solver
	// never auto-orients, so duals keep their documented meaning).
	ErrTooManyRows = errors.New("sap: more rows than columns, transpose first")

	// ErrRowOutOfRange indicates that a free-row index lies outside [0, nr).
	ErrRowOutOfRange = errors.New("sap: row index out of range")

	// ErrColOutOfRange indicates that a column index lies outside [0, nc).
	ErrColOutOfRange = errors.New("sap: column index out of range")

	// ErrBadState indicates that state buffer lengths disagree with the cost
	// matrix shape (len(U) != nr, len(V) != nc, and so on).
	ErrBadState = errors.New("sap: state buffers do not match matrix shape")

	// ErrBadAssignment indicates that a supplied Col4Row/Row4Col entry is
	// outside {−1} ∪ [0, n).
	ErrBadAssignment = errors.New("sap: assignment entry out of range")

	// ErrInfeasible indicates that no finite-cost augmenting path exists:
	// the shortest-path search saw only +∞ edges toward every remaining
	// column. State mutated by the failed step is unspecified.
	ErrInfeasible = errors.New("sap: cost matrix is infeasible")
)
