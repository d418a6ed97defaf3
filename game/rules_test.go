package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/zerosumlab/zerosum/game"
)

// canonical forward rule matrices, as derived by hand from the game rules.
var (
	wantA01 = mat.NewDense(3, 3, []float64{1, -1, 1, 1, -1, -1, -1, 1, 0})
	wantA02 = mat.NewDense(3, 3, []float64{1, -1, 1, 1, 0, -1, -1, 1, -1})
	wantA12 = mat.NewDense(3, 3, []float64{0, -1, 1, 1, 1, -1, -1, 1, -1})
)

// TestRuleMatrices_CanonicalValues verifies that the rule-derived matrices
// equal the canonical literals for the three forward pairings.
func TestRuleMatrices_CanonicalValues(t *testing.T) {
	r := game.RuleMatrices()

	cases := []struct {
		k, j int
		want *mat.Dense
	}{
		{0, 1, wantA01},
		{0, 2, wantA02},
		{1, 2, wantA12},
	}
	for _, c := range cases {
		got, err := r.Pair(c.k, c.j)
		require.NoError(t, err)
		assert.True(t, mat.Equal(got, c.want), "A%d%d mismatch:\ngot %v", c.k, c.j, mat.Formatted(got))
	}
}

// TestRuleMatrices_Antisymmetry verifies the reverse-pairing identity
// A[j][k] = -A[k][j]^T for all ordered pairs, which is the algebraic source
// of the zero-sum property.
func TestRuleMatrices_Antisymmetry(t *testing.T) {
	r := game.RuleMatrices()

	for k := 0; k < game.NumPlayers; k++ {
		for j := 0; j < game.NumPlayers; j++ {
			if k == j {
				continue
			}
			fwd, err := r.Pair(k, j)
			require.NoError(t, err)
			rev, err := r.Pair(j, k)
			require.NoError(t, err)

			var negT mat.Dense
			negT.Scale(-1, fwd.T())
			assert.True(t, mat.Equal(rev, &negT), "A[%d][%d] != -A[%d][%d]^T", j, k, k, j)
		}
	}
}

// TestRuleMatrices_PairValidation checks index validation on Pair.
func TestRuleMatrices_PairValidation(t *testing.T) {
	r := game.RuleMatrices()

	for _, idx := range [][2]int{{-1, 0}, {0, 3}, {3, 0}, {1, 1}} {
		_, err := r.Pair(idx[0], idx[1])
		assert.ErrorIs(t, err, game.ErrPlayerOutOfRange, "Pair(%d,%d) must reject", idx[0], idx[1])
	}
}

// TestRuleMatrices_SpecialActionDiagonal spot-checks the tie-break rule on
// the diagonals: a player playing its own special action wins a tie, a tie
// between two non-special actions draws.
func TestRuleMatrices_SpecialActionDiagonal(t *testing.T) {
	r := game.RuleMatrices()

	a01, err := r.Pair(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a01.At(0, 0), "player 0 wins a rock tie (rock is its special)")
	assert.Equal(t, -1.0, a01.At(1, 1), "player 0 loses a paper tie (paper is player 1's special)")
	assert.Equal(t, 0.0, a01.At(2, 2), "a scissors tie between players 0 and 1 draws")
}
