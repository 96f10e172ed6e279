// Package sap solves the rectangular Linear Assignment Problem with the
// shortest-augmenting-path (SAP) primal-dual method.
//
// 🚀 What is SAP?
//
//	Given an nr×nc cost matrix C with nr ≤ nc, find an injective map
//	π : rows → columns minimizing Σ C[i, π(i)]. The solver maintains
//	dual prices (u, v) and a partial assignment (Col4Row, Row4Col) and
//	grows the matching one row at a time: each step runs a Dijkstra-style
//	search over reduced costs C[i,j] − u[i] − v[j] until it reaches a free
//	column, then reprices the scanned rows/columns and flips the
//	alternating path. See Crouse (2016), §III.
//
// Algorithm Outline (one Augment step for free row r):
//  1. Initialize scratch: path[*]=−1, shortestPathCosts[*]=+∞,
//     remaining = [0, 1, …, nc−1], minVal = 0, rowIdx = r.
//  2. Repeat until a free column (the sink) is finalized:
//     a. Scan every remaining column j, relaxing
//     minVal + C[rowIdx,j] − u[rowIdx] − v[j] into shortestPathCosts[j].
//     b. Pick the remaining column with the smallest path cost; among
//     bit-exact ties prefer an unassigned column (required for
//     termination on constant matrices).
//     c. If that minimum is +∞, the matrix is infeasible.
//     d. Finalize the column: it becomes the sink if free, otherwise the
//     search continues from the row currently holding it.
//  3. Reprice: u rises on scanned rows, v falls on scanned columns, so the
//     augmenting path becomes tight while feasibility holds elsewhere.
//  4. Flip assignments along the path from the sink back to row r.
//
// Invariants (between calls):
//   - Col4Row/Row4Col form a partial injection (mutual inverses).
//   - C[i,j] − u[i] − v[j] ≥ 0 for rows already assigned, with equality on
//     assigned pairs (complementary slackness).
//
// Determinism:
//
//	The frontier of remaining columns starts in ascending index order and
//	is compacted by swap-with-last, so later scans follow that compacted
//	order. Ties compare float64 values bit-exactly (no epsilon) and resolve
//	to the lowest-index unassigned column regardless of scan order.
//	Repeated solves of the same matrix yield identical assignments; a
//	constant matrix yields the identity.
//
// Complexity:
//
//	– Time:  O(nr² · nc) for Solve (nr augment steps, each O(nr·nc) scan).
//	– Space: O(nc) scratch, reused across rows by the driver.
//
// Errors (sentinel):
//
//	– ErrNilMatrix     if the cost matrix is nil.
//	– ErrTooManyRows   if nc < nr (transpose first; the core never auto-orients).
//	– ErrRowOutOfRange if a free-row index is outside [0, nr).
//	– ErrBadState      if state buffer lengths do not match the matrix shape.
//	– ErrBadAssignment if a supplied assignment entry is outside {−1} ∪ range.
//	– ErrInfeasible    if no finite-cost augmenting path exists.
//	– lapmat.ErrBadShape / lapmat.ErrInvalidEntry surfaced from ingestion.
//
// Example usage:
//
//	c, _ := lapmat.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
//	st, err := sap.Solve(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(st.Col4Row) // [1 0 2]
package sap
