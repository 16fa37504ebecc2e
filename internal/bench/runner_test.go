package bench

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/giretra/giretra-server-go/internal/player"
)

func randomFactory(rng *rand.Rand) player.Agent {
	return player.NewRandomAgent(rng)
}

func TestBenchmarkRunTallies(t *testing.T) {
	runner := NewRunner(randomFactory, randomFactory, zaptest.NewLogger(t))

	result, err := runner.Run(context.Background(), Config{
		Matches:     6,
		Parallelism: 3,
		Seed:        1,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, result.Matches)
	assert.Equal(t, 6, result.Team1Wins+result.Team2Wins)
	assert.Greater(t, result.TotalDeals, 0)
	assert.NotZero(t, result.Team1Elo)
	assert.NotZero(t, result.Team2Elo)

	// Rating updates are zero-sum under a shared K factor.
	assert.InDelta(t, 2*InitialRating, result.Team1Elo+result.Team2Elo, 1e-9)
}

func TestBenchmarkEloConfiguration(t *testing.T) {
	run := func(k float64) Result {
		runner := NewRunner(randomFactory, randomFactory, zaptest.NewLogger(t))
		result, err := runner.Run(context.Background(), Config{
			Matches:     3,
			Parallelism: 1,
			Seed:        5,
			KFactor:     k,
			Team1Rating: 1600,
			Team2Rating: 1400,
		})
		require.NoError(t, err)
		return result
	}

	small, large := run(16), run(64)

	// Same matches, same starting ratings: only the update step differs.
	assert.Equal(t, small.Team1Wins, large.Team1Wins)
	assert.InDelta(t, 3000, small.Team1Elo+small.Team2Elo, 1e-9)
	assert.InDelta(t, 3000, large.Team1Elo+large.Team2Elo, 1e-9)
	assert.Greater(t,
		absFloat(large.Team1Elo-1600),
		absFloat(small.Team1Elo-1600),
		"a larger K moves the rating further")
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestBenchmarkIsReproducible(t *testing.T) {
	run := func() Result {
		runner := NewRunner(randomFactory, randomFactory, zaptest.NewLogger(t))
		result, err := runner.Run(context.Background(), Config{
			Matches:     4,
			Parallelism: 4,
			Seed:        123,
		})
		require.NoError(t, err)
		return result
	}

	a, b := run(), run()
	assert.Equal(t, a.Team1Wins, b.Team1Wins)
	assert.Equal(t, a.TotalDeals, b.TotalDeals)
	assert.Equal(t, a.Team1Elo, b.Team1Elo)
	assert.Equal(t, a.Team2Elo, b.Team2Elo)
}

func TestBenchmarkHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(randomFactory, randomFactory, zaptest.NewLogger(t))
	_, err := runner.Run(ctx, Config{Matches: 2, Parallelism: 1, Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
