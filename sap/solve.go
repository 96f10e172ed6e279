// Package sap: the solve driver.

package sap

import (
	"fmt"

	"github.com/katalvlaran/lapgo/lapmat"
	"github.com/katalvlaran/lapgo/logger"
)

// Solve computes a minimum-cost assignment of every row of cost to a
// distinct column and returns the final state: the assignment in both
// directions plus the dual variables certifying optimality.
//
// The driver allocates zeroed duals and an empty matching, then augments
// rows in ascending order 0, 1, …, nr−1. Ascending order makes the output
// deterministic under the tie-break policy (a constant matrix yields
// Col4Row[i] = i). Scratch arrays are allocated once and reset per row.
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilMatrix).
//  2. cost must be NaN/−Inf free (lapmat.ErrInvalidEntry).
//  3. cost must satisfy nr ≤ nc (ErrTooManyRows); transpose first otherwise.
//
// Returns ErrInfeasible as soon as some row has no finite-cost augmenting
// path; the partially mutated state is discarded (nil is returned).
//
// Complexity:
//
//   - Time:  O(nr² · nc)
//   - Space: O(nr + nc)
func Solve(cost *lapmat.Dense, opts ...Option) (*State, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the cost matrix.
	if cost == nil {
		return nil, ErrNilMatrix
	}
	if err := lapmat.ValidateEntries(cost); err != nil {
		return nil, err
	}
	nr, nc := cost.Rows(), cost.Cols()
	if nc < nr {
		return nil, ErrTooManyRows
	}

	// 3) Allocate zeroed duals, empty matching, and one reusable scratch.
	st, err := NewState(nr, nc)
	if err != nil {
		return nil, err
	}
	s := newScratch(nr, nc)

	if cfg.Verbose {
		lg := logger.Logger()
		lg.Debug().Int("nr", nr).Int("nc", nc).Msg("sap: solve start")
		logStep(st)
	}

	// 4) Augment each row in ascending order, propagating Infeasible
	//    immediately.
	var r int
	for r = 0; r < nr; r++ {
		s.reset()
		if err = augmentStep(cost, r, st, s); err != nil {
			return nil, fmt.Errorf("Solve: row %d: %w", r, err)
		}
		if cfg.Verbose {
			logStep(st)
		}
	}

	if cfg.Verbose {
		lg := logger.Logger()
		lg.Debug().Msg("sap: solve finished")
	}

	// 5) Return the four mutated buffers to the caller.
	return st, nil
}
