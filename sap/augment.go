// Package sap: the shortest-augmenting-path step.
//
// augmentStep is the engine behind every public entry point. It implements
// one primal-dual iteration: a Dijkstra-style search on reduced costs from
// a free row to the nearest free column, followed by repricing and the
// alternating-path flip. Determinism hinges on three policies kept exactly
// as documented in doc.go: an ascending initial frontier, swap-with-last
// frontier compaction, and bit-exact tie-breaking toward the lowest-index
// unassigned column.

package sap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lapgo/lapmat"
	"github.com/katalvlaran/lapgo/logger"
)

// scratch holds the per-step working arrays. The driver allocates one
// scratch and resets it between rows; the public Augment allocates a fresh
// one per call. Either way the contract is identical (reset is O(nc)).
type scratch struct {
	path      []int     // predecessor row for each column; −1 if unvisited
	pathCosts []float64 // best reduced-path cost to each column; +∞ if unvisited
	scannedR  []bool    // rows committed to the shortest-path tree (SR)
	scannedC  []bool    // columns finalized by the search (SC)
	remaining []int     // compact list of columns not yet finalized
}

// newScratch allocates scratch for an nr×nc problem.
// Complexity: O(nr + nc).
func newScratch(nr, nc int) *scratch {
	return &scratch{
		path:      make([]int, nc),
		pathCosts: make([]float64, nc),
		scannedR:  make([]bool, nr),
		scannedC:  make([]bool, nc),
		remaining: make([]int, nc),
	}
}

// reset restores the scratch to its pristine pre-search configuration:
// no predecessors, +∞ path costs, nothing scanned, every column remaining
// in ascending order. Ascending initialization is what makes a constant
// cost matrix resolve to the identity assignment.
// Complexity: O(nr + nc).
func (s *scratch) reset() {
	var k int
	for k = range s.path {
		s.path[k] = -1
		s.pathCosts[k] = math.Inf(1)
		s.scannedC[k] = false
		s.remaining[k] = k
	}
	for k = range s.scannedR {
		s.scannedR[k] = false
	}
}

// augmentStep grows the matching by one row. On entry the assignment and
// dual-feasibility invariants must hold and curRow is typically free; on
// success curRow is assigned and both invariants are re-established. The
// scratch must be freshly reset.
//
// Returns ErrInfeasible when every remaining column sits behind +∞ reduced
// cost; the state touched by the failed step is unspecified.
//
// Complexity: O(nr·nc) time (each of ≤ nr frontier expansions scans the
// shrinking remaining list), O(1) extra space beyond the scratch.
func augmentStep(cost *lapmat.Dense, curRow int, st *State, s *scratch) error {
	nc := cost.Cols()

	// 1) Search state: minVal is the length of the shortest finalized path,
	//    rowIdx the row being scanned, sink the free column once found.
	minVal := 0.0
	rowIdx := curRow
	numRemaining := nc
	sink := -1

	var (
		it, idxMin, j int
		lowest, r     float64
		row           []float64
		uRow          float64
	)

	// 2) Dijkstra on reduced costs until an unassigned column is finalized.
	for sink == -1 {
		// 2a) Commit the current row to the shortest-path tree.
		s.scannedR[rowIdx] = true
		row = cost.Row(rowIdx)
		uRow = st.U[rowIdx]

		// 2b+2c) Relax every remaining column and select the frontier
		// minimum in the same pass over the frontier. Tie-break: among
		// columns tied bit-exactly for the minimum, an unassigned column
		// displaces an assigned one or a higher-index unassigned one, and an
		// assigned column never displaces an equal candidate — so ties
		// resolve to the lowest-index unassigned column whatever order
		// compaction has left the frontier in. On degenerate (e.g. constant)
		// matrices this is what stops the search from cycling over equal-cost
		// assigned columns.
		idxMin = -1
		lowest = math.Inf(1)
		for it = 0; it < numRemaining; it++ {
			j = s.remaining[it]
			r = minVal + row[j] - uRow - st.V[j]
			if r < s.pathCosts[j] {
				s.path[j] = rowIdx
				s.pathCosts[j] = r
			}
			if s.pathCosts[j] < lowest ||
				(s.pathCosts[j] == lowest && st.Row4Col[j] == Unassigned && idxMin >= 0 &&
					(st.Row4Col[s.remaining[idxMin]] != Unassigned || j < s.remaining[idxMin])) {
				lowest = s.pathCosts[j]
				idxMin = it
			}
		}

		// 2d) A +∞ minimum means no finite path reaches any free column.
		minVal = lowest
		if math.IsInf(minVal, 1) {
			return ErrInfeasible
		}

		// 2e) Finalize the chosen column: sink if free, otherwise continue
		// scanning from the row currently holding it.
		j = s.remaining[idxMin]
		if st.Row4Col[j] == Unassigned {
			sink = j
		} else {
			rowIdx = int(st.Row4Col[j])
		}

		// 2f) Remove the finalized column from the frontier in O(1).
		s.scannedC[j] = true
		numRemaining--
		s.remaining[idxMin] = s.remaining[numRemaining]
	}

	// 3) Dual update: raise u on scanned rows, lower v on scanned columns.
	//    The originally free row gains the full path length; every other
	//    scanned row is offset by the path cost of its assigned column, so
	//    reduced costs along the augmenting path drop to zero while
	//    feasibility is preserved elsewhere.
	var i int
	for i = range s.scannedR {
		if !s.scannedR[i] {
			continue
		}
		if i == curRow {
			st.U[i] += minVal
		} else {
			st.U[i] += minVal - s.pathCosts[st.Col4Row[i]]
		}
	}
	for j = 0; j < nc; j++ {
		if s.scannedC[j] {
			st.V[j] -= minVal - s.pathCosts[j]
		}
	}

	// 4) Flip the alternating path from the sink back to curRow. The swap
	//    hands each row's previous column to the next iteration for rewiring.
	j = sink
	for {
		i = s.path[j]
		st.Row4Col[j] = int64(i)
		next := st.Col4Row[i]
		st.Col4Row[i] = int64(j)
		if i == curRow {
			break
		}
		j = int(next)
	}

	return nil
}

// Augment performs a single SAP iteration from freeRow against cost,
// mutating st in place: after a successful call Col4Row[freeRow] is
// assigned and the assignment/dual-feasibility invariants hold again.
//
// Preconditions (validated before any mutation):
//   - cost is non-nil, NaN/−Inf free, with Rows ≤ Cols.
//   - st buffers match the matrix shape; assignment entries are in range.
//   - freeRow ∈ [0, nr).
//
// freeRow may also carry an existing assignment (re-augmentation); behavior
// is defined provided the invariants held on entry.
//
// Returns ErrInfeasible when no finite augmenting path exists; st is then
// unspecified (snapshot with Clone first if atomicity matters).
//
// Complexity: O(nr·nc) time, O(nr + nc) scratch.
func Augment(cost *lapmat.Dense, freeRow int, st *State, opts ...Option) error {
	// Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Validate the cost matrix before touching any state.
	if cost == nil {
		return ErrNilMatrix
	}
	if err := lapmat.ValidateEntries(cost); err != nil {
		return err
	}
	nr, nc := cost.Rows(), cost.Cols()
	if nc < nr {
		return ErrTooManyRows
	}

	// Validate the supplied state and row index.
	if err := st.validate(nr, nc); err != nil {
		return err
	}
	if freeRow < 0 || freeRow >= nr {
		return fmt.Errorf("Augment: freeRow=%d, nr=%d: %w", freeRow, nr, ErrRowOutOfRange)
	}

	if cfg.Verbose {
		lg := logger.Logger()
		lg.Debug().Int("freeRow", freeRow).Int("nr", nr).Msg("sap: augment row")
	}

	// Re-augmentation: detach the row's current column so a free sink exists
	// even on a square, fully assigned problem. Duals are untouched, so the
	// feasibility invariant keeps holding; if the detached column is still
	// the cheapest tight choice the search re-selects it and the state ends
	// up unchanged.
	if prev := st.Col4Row[freeRow]; prev != Unassigned {
		st.Row4Col[prev] = Unassigned
		st.Col4Row[freeRow] = Unassigned
	}

	// Run the step on a fresh scratch.
	s := newScratch(nr, nc)
	s.reset()
	if err := augmentStep(cost, freeRow, st, s); err != nil {
		return err
	}

	if cfg.Verbose {
		logStep(st)
	}

	return nil
}

// logStep emits the mutated duals and assignments after one augment step.
// Diagnostic output only; the format is not part of the contract.
func logStep(st *State) {
	lg := logger.Logger()
	lg.Debug().
		Floats64("v", st.V).
		Ints64("col4row", st.Col4Row).
		Ints64("row4col", st.Row4Col).
		Msg("sap: augment step done")
}
