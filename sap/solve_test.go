package sap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lapgo/lapgen"
	"github.com/katalvlaran/lapgo/lapmat"
	"github.com/katalvlaran/lapgo/sap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireInvariants asserts the primal-dual certificate of a completed
// solve: total injective assignment, dual feasibility on finite entries,
// tight assigned edges, and strong complementarity
// Σ C[i, col4row[i]] = Σ u + Σ v over assigned columns.
func requireInvariants(t *testing.T, c *lapmat.Dense, st *sap.State) {
	t.Helper()

	nr, nc := c.Rows(), c.Cols()
	require.Len(t, st.Col4Row, nr)
	require.Len(t, st.Row4Col, nc)

	// Total assignment, mutual inversion, distinct columns.
	seen := make(map[int64]bool, nr)
	for i := 0; i < nr; i++ {
		j := st.Col4Row[i]
		require.GreaterOrEqual(t, j, int64(0), "row %d must be assigned", i)
		require.Less(t, j, int64(nc))
		require.False(t, seen[j], "column %d assigned twice", j)
		seen[j] = true
		require.Equal(t, int64(i), st.Row4Col[j], "mutual inversion broken at row %d", i)
	}

	// Dual feasibility (finite entries) and tightness on assigned pairs.
	var total, duals float64
	for i := 0; i < nr; i++ {
		row := c.Row(i)
		for j := 0; j < nc; j++ {
			if math.IsInf(row[j], 1) {
				continue
			}
			reduced := row[j] - st.U[i] - st.V[j]
			assert.GreaterOrEqual(t, reduced, -1e-9, "reduced cost negative at (%d,%d)", i, j)
		}
		jAssigned := st.Col4Row[i]
		assert.InDelta(t, 0, row[jAssigned]-st.U[i]-st.V[jAssigned], 1e-9, "assigned edge (%d,%d) not tight", i, jAssigned)
		total += row[jAssigned]
		duals += st.U[i] + st.V[jAssigned]
	}
	assert.InDelta(t, total, duals, 1e-9, "strong complementarity violated")
}

// bruteForceMin returns the minimum assignment cost by exhaustive search
// over injective row→column maps. Exponential; for tiny matrices only.
func bruteForceMin(c *lapmat.Dense) float64 {
	nr, nc := c.Rows(), c.Cols()
	used := make([]bool, nc)

	var rec func(i int) float64
	rec = func(i int) float64 {
		if i == nr {
			return 0
		}
		best := math.Inf(1)
		row := c.Row(i)
		for j := 0; j < nc; j++ {
			if used[j] || math.IsInf(row[j], 1) {
				continue
			}
			used[j] = true
			if rest := rec(i + 1); row[j]+rest < best {
				best = row[j] + rest
			}
			used[j] = false
		}
		return best
	}

	return rec(0)
}

// TestSolve_ConstantMatrixIdentity: a constant matrix must resolve to the
// identity assignment under the tie-break policy (scenario S1).
func TestSolve_ConstantMatrixIdentity(t *testing.T) {
	c, err := lapgen.Constant(3, 3, 5)
	require.NoError(t, err)

	st, err := sap.Solve(c)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 2}, st.Col4Row)
	cost, err := st.TotalCost(c)
	require.NoError(t, err)
	assert.Equal(t, 15.0, cost)
	requireInvariants(t, c, st)
}

// TestSolve_RectangularTies: equal-cost optima break toward the lowest
// column index (scenario S2).
func TestSolve_RectangularTies(t *testing.T) {
	c, err := lapmat.FromRows([][]float64{{0, 0, 1}, {1, 0, 2}})
	require.NoError(t, err)

	st, err := sap.Solve(c)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1}, st.Col4Row)
	cost, err := st.TotalCost(c)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
	requireInvariants(t, c, st)
}

// TestSolve_Classic3x3: the classic 3×3 instance with a unique optimum
// (scenario S3).
func TestSolve_Classic3x3(t *testing.T) {
	c, err := lapmat.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	require.NoError(t, err)

	st, err := sap.Solve(c)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 0, 2}, st.Col4Row)
	cost, err := st.TotalCost(c)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cost)
	requireInvariants(t, c, st)
}

// TestSolve_Infeasible: a row reachable only through +Inf edges reports
// ErrInfeasible (scenario S4).
func TestSolve_Infeasible(t *testing.T) {
	inf := math.Inf(1)
	c, err := lapmat.FromRows([][]float64{{inf, inf}, {1, 2}})
	require.NoError(t, err)

	st, err := sap.Solve(c)
	assert.ErrorIs(t, err, sap.ErrInfeasible)
	assert.Nil(t, st, "no state is returned on infeasibility")
}

// TestSolve_RectangularDominance: nc > nr leaves exactly nc−nr columns
// unassigned (scenario S5 + boundary 10).
func TestSolve_RectangularDominance(t *testing.T) {
	c, err := lapmat.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	st, err := sap.Solve(c)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1}, st.Col4Row)
	assert.Equal(t, sap.Unassigned, st.Row4Col[2])
	cost, err := st.TotalCost(c)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cost)
	requireInvariants(t, c, st)
}

// TestSolve_SingleCell: the 1×1 boundary yields the trivial assignment with
// a valid dual decomposition (boundary 9).
func TestSolve_SingleCell(t *testing.T) {
	c, err := lapmat.FromRows([][]float64{{7}})
	require.NoError(t, err)

	st, err := sap.Solve(c)
	require.NoError(t, err)

	assert.Equal(t, []int64{0}, st.Col4Row)
	assert.Equal(t, []int64{0}, st.Row4Col)
	assert.InDelta(t, 7.0, st.U[0]+st.V[0], 1e-9, "duals must decompose the single cost")
	requireInvariants(t, c, st)
}

// TestSolve_ForbiddenEdgesPerfectMatching: a unique finite matching among
// +Inf entries is found, not reported infeasible (boundary 11).
func TestSolve_ForbiddenEdgesPerfectMatching(t *testing.T) {
	inf := math.Inf(1)
	c, err := lapmat.FromRows([][]float64{
		{inf, inf, 1},
		{inf, 2, inf},
		{3, inf, inf},
	})
	require.NoError(t, err)

	st, err := sap.Solve(c)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 1, 0}, st.Col4Row)
	cost, err := st.TotalCost(c)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cost)
	requireInvariants(t, c, st)
}

// TestSolve_AllInfRow: a row with no finite edge at all is infeasible
// (boundary 12).
func TestSolve_AllInfRow(t *testing.T) {
	inf := math.Inf(1)
	c, err := lapmat.FromRows([][]float64{{1, 2}, {inf, inf}})
	require.NoError(t, err)

	_, err = sap.Solve(c)
	assert.ErrorIs(t, err, sap.ErrInfeasible)
}

// TestSolve_Validation covers the pre-mutation error taxonomy: nil matrix,
// orientation, NaN / −Inf entries.
func TestSolve_Validation(t *testing.T) {
	_, err := sap.Solve(nil)
	assert.ErrorIs(t, err, sap.ErrNilMatrix)

	tall, err := lapmat.FromRows([][]float64{{1}, {2}})
	require.NoError(t, err)
	_, err = sap.Solve(tall)
	assert.ErrorIs(t, err, sap.ErrTooManyRows, "nr > nc must be rejected, never auto-transposed")

	nan, err := lapmat.FromRows([][]float64{{1, math.NaN()}})
	require.NoError(t, err)
	_, err = sap.Solve(nan)
	assert.ErrorIs(t, err, lapmat.ErrInvalidEntry)

	neg, err := lapmat.FromRows([][]float64{{1, math.Inf(-1)}})
	require.NoError(t, err)
	_, err = sap.Solve(neg)
	assert.ErrorIs(t, err, lapmat.ErrInvalidEntry)
}

// TestSolve_Determinism: repeated solves return identical assignments
// (property 5).
func TestSolve_Determinism(t *testing.T) {
	c, err := lapgen.Uniform(6, 9, 0, 1, 42)
	require.NoError(t, err)

	first, err := sap.Solve(c)
	require.NoError(t, err)
	second, err := sap.Solve(c)
	require.NoError(t, err)

	assert.Equal(t, first.Col4Row, second.Col4Row)
	assert.Equal(t, first.Row4Col, second.Row4Col)
	assert.Equal(t, first.U, second.U)
	assert.Equal(t, first.V, second.V)
}

// TestSolve_ConstantShift: adding k to every entry shifts Σu by nr·k and
// leaves the assignment unchanged (property 8).
func TestSolve_ConstantShift(t *testing.T) {
	const k = 2.5
	c, err := lapgen.Uniform(4, 6, 0, 10, 7)
	require.NoError(t, err)

	shifted := c.Clone()
	for i := 0; i < shifted.Rows(); i++ {
		row := shifted.Row(i)
		for j := range row {
			row[j] += k
		}
	}

	base, err := sap.Solve(c)
	require.NoError(t, err)
	moved, err := sap.Solve(shifted)
	require.NoError(t, err)

	assert.Equal(t, base.Col4Row, moved.Col4Row, "shift must not change the optimum")

	var sumBase, sumMoved float64
	for i := range base.U {
		sumBase += base.U[i]
		sumMoved += moved.U[i]
	}
	assert.InDelta(t, float64(c.Rows())*k, sumMoved-sumBase, 1e-9)
}

// TestSolve_OptimalityBruteForce cross-checks the solver against exhaustive
// search on seeded instances of the uniform, geometric and Machol–Wien
// generator families (property 4).
func TestSolve_OptimalityBruteForce(t *testing.T) {
	type instance struct {
		name string
		c    *lapmat.Dense
	}

	var cases []instance
	for seed := int64(1); seed <= 5; seed++ {
		u, err := lapgen.Uniform(5, 6, 0, 1, seed)
		require.NoError(t, err)
		g, err := lapgen.Geometric(4, 6, 0, 1, seed)
		require.NoError(t, err)
		r, err := lapgen.RandomMacholWien(5, 5, seed)
		require.NoError(t, err)
		cases = append(cases,
			instance{"uniform", u},
			instance{"geometric", g},
			instance{"machol-wien", r},
		)
	}
	mw, err := lapgen.MacholWien(6, 6)
	require.NoError(t, err)
	cases = append(cases, instance{"machol-wien-exact", mw})

	for _, tc := range cases {
		st, err := sap.Solve(tc.c)
		require.NoError(t, err, tc.name)

		got, err := st.TotalCost(tc.c)
		require.NoError(t, err, tc.name)
		assert.InDelta(t, bruteForceMin(tc.c), got, 1e-9, "%s: not optimal", tc.name)
		requireInvariants(t, tc.c, st)
	}
}

// TestNewState covers allocation and validation of fresh solver state.
func TestNewState(t *testing.T) {
	st, err := sap.NewState(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{sap.Unassigned, sap.Unassigned}, st.Col4Row)
	assert.Equal(t, []float64{0, 0, 0}, st.V)

	_, err = sap.NewState(0, 3)
	assert.ErrorIs(t, err, lapmat.ErrBadShape)
	_, err = sap.NewState(3, 2)
	assert.ErrorIs(t, err, sap.ErrTooManyRows)
}

// TestState_TotalCostErrors covers shape and unassigned-row failures.
func TestState_TotalCostErrors(t *testing.T) {
	c, err := lapmat.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	st, err := sap.NewState(2, 2)
	require.NoError(t, err)
	_, err = st.TotalCost(c)
	assert.ErrorIs(t, err, sap.ErrBadAssignment, "unassigned rows have no total cost")

	other, err := sap.NewState(2, 3)
	require.NoError(t, err)
	_, err = other.TotalCost(c)
	assert.ErrorIs(t, err, sap.ErrBadState)
}
