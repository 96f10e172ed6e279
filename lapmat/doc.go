// Package lapmat provides the dense cost-matrix container consumed by the
// SAP solver, with a strict numeric entry policy.
//
// 🚀 What is lapmat?
//
//	A row-major float64 matrix of assignment costs C[i,j]:
//	  • Dense storage: one flat slice, cache-friendly row scans
//	  • Entry policy: +Inf is legal and marks a forbidden edge;
//	    NaN and −Inf are rejected at the ingestion boundary
//	  • Zero-copy row access for solver hot loops (Row)
//	  • Transpose for callers that hold more rows than columns
//
// ⚙️ Usage:
//
//	c, err := lapmat.FromRows([][]float64{
//	  {4, 1, 3},
//	  {2, 0, 5},
//	  {3, 2, 2},
//	})
//	if err != nil { ... }
//	v := c.Row(1)[2] // 5
//
// Errors (sentinel):
//
//	– ErrBadShape     if requested dimensions are non-positive or rows are ragged.
//	– ErrOutOfRange   if an index is outside valid bounds.
//	– ErrNilMatrix    if a nil *Dense is passed to a validator.
//	– ErrInvalidEntry if a NaN or −Inf entry is observed where the numeric
//	                  policy requires a well-formed cost.
//
// All sentinels are matched via errors.Is; context wrapping happens only at
// package boundaries.
package lapmat
