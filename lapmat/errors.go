// Package lapmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// lapmat package. Callers match them via errors.Is; wrapping with
// fmt.Errorf("ctx: %w", ErrX) is reserved for outer boundaries.

package lapmat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r <= 0 or
	// c <= 0) or when FromRows receives ragged input. Construction must
	// validate before allocation.
	ErrBadShape = errors.New("lapmat: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Row) return or panic with this, they
	// never read out of bounds silently.
	ErrOutOfRange = errors.New("lapmat: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was used where a matrix is
	// required.
	ErrNilMatrix = errors.New("lapmat: nil matrix")

	// ErrInvalidEntry signals a NaN or −Inf cost entry. +Inf is a legal value
	// (forbidden edge); NaN and −Inf have no meaning under the reduced-cost
	// arithmetic and are rejected at the ingestion boundary.
	ErrInvalidEntry = errors.New("lapmat: NaN or -Inf cost entry")
)
