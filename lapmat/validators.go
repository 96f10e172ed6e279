// Package lapmat: validation helpers shared by solver entry points.
//
// Purpose:
//   - Provide a single, canonical source of truth for cost-matrix checks.
//   - Keep solver facades minimal by delegating nil/entry checks here.
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Entry scan runs O(r*c) over the flat storage.

package lapmat

import (
	"fmt"
	"math"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateEntries scans every entry and rejects NaN and −Inf costs.
// +Inf is accepted: it encodes a forbidden edge and is handled by the
// solver's infeasibility detection, not by ingestion.
//
// The scan is performed once at the entry boundary so the solver core can
// rely on bit-exact float comparisons without an epsilon (a NaN inside the
// frontier scan would poison the tie-break).
//
// Returns ErrInvalidEntry naming the first offending coordinate.
// Complexity: O(r*c) time, O(1) space.
func ValidateEntries(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var k int
	var x float64
	for k, x = range m.data {
		if math.IsNaN(x) || math.IsInf(x, -1) {
			return fmt.Errorf("ValidateEntries: entry (%d,%d)=%v: %w", k/m.c, k%m.c, x, ErrInvalidEntry)
		}
	}

	return nil
}
