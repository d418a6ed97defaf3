package game_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/zerosumlab/zerosum/game"
)

// identityStrategy has each player deterministically playing action index =
// own index (player 0 rock, player 1 paper, player 2 scissors).
var identityStrategy = game.StrategyMatrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// TestPayoffProbabilities_ZeroSum verifies the defining invariant
// Σ_k (2p_k − 1) = 0 within DefaultEpsilon on a batch of random strategies.
func TestPayoffProbabilities_ZeroSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	xs, err := game.SampleStrategyMatrices(200, rng)
	require.NoError(t, err)

	for i, x := range xs {
		p, err := game.PayoffProbabilities(x)
		require.NoError(t, err)

		var sum float64
		for _, e := range p.Expectations() {
			sum += e
		}
		assert.InDelta(t, 0, sum, game.DefaultEpsilon, "sample %d violates zero-sum", i)
	}
}

// TestPayoffProbabilities_Range verifies that every probability lies in [0,1].
func TestPayoffProbabilities_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	xs, err := game.SampleStrategyMatrices(100, rng)
	require.NoError(t, err)

	for _, x := range xs {
		p, err := game.PayoffProbabilities(x)
		require.NoError(t, err)
		for k, v := range p {
			assert.GreaterOrEqual(t, v, 0.0, "p[%d] below 0", k)
			assert.LessOrEqual(t, v, 1.0, "p[%d] above 1", k)
		}
	}
}

// TestPayoffProbabilities_IdentityScenario pins the analytically derived
// fixed point: with each player on its own special action the pairwise terms
// cancel (n_0 = A01[0,1]+A02[0,2] = −1+1 = 0, similarly n_1, n_2), so every
// win probability is exactly 0.5.
func TestPayoffProbabilities_IdentityScenario(t *testing.T) {
	p, err := game.PayoffProbabilities(identityStrategy)
	require.NoError(t, err)

	for k := 0; k < game.NumPlayers; k++ {
		assert.InDelta(t, 0.5, p[k], 1e-12, "p[%d]", k)
	}
	var sum float64
	for _, e := range p.Expectations() {
		sum += e
	}
	assert.InDelta(t, 0, sum, game.DefaultEpsilon)
}

// TestPayoffProbabilities_InvalidInput checks the fail-fast validation order:
// NaN/Inf, then negativity, then row sums.
func TestPayoffProbabilities_InvalidInput(t *testing.T) {
	nan := identityStrategy
	nan[0][0] = math.NaN()
	_, err := game.PayoffProbabilities(nan)
	assert.ErrorIs(t, err, game.ErrNaNInf)

	neg := game.StrategyMatrix{{1.5, -0.5, 0}, {0, 1, 0}, {0, 0, 1}}
	_, err = game.PayoffProbabilities(neg)
	assert.ErrorIs(t, err, game.ErrNegativeEntry)

	bad := identityStrategy
	bad[1][1] = 0.8
	_, err = game.PayoffProbabilities(bad)
	assert.ErrorIs(t, err, game.ErrRowSum)
}

// TestStrategyMatrix_ValidateAcceptsSampled verifies Validate on generator output.
func TestStrategyMatrix_ValidateAcceptsSampled(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	xs, err := game.SampleStrategyMatrices(50, rng)
	require.NoError(t, err)
	for _, x := range xs {
		assert.NoError(t, x.Validate())
	}
}
