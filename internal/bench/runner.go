package bench

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/giretra/giretra-server-go/internal/game"
	"github.com/giretra/giretra-server-go/internal/player"
)

// AgentFactory builds a fresh agent per seat per match. Agents hold per-match
// random state, so they cannot be shared across parallel matches.
type AgentFactory func(rng *rand.Rand) player.Agent

// Config describes one benchmark run. Team 1 holds the bottom and top seats,
// team 2 left and right. Zero ratings start at 1500; a zero KFactor falls
// back to DefaultKFactor.
type Config struct {
	Matches     int
	Parallelism int
	Seed        int64
	TargetScore int
	MaxDeals    int

	KFactor     float64
	Team1Rating float64
	Team2Rating float64
}

// Result tallies a finished benchmark.
type Result struct {
	Matches    int
	Team1Wins  int
	Team2Wins  int
	TotalDeals int
	Elapsed    time.Duration

	// Both teams' Elo ratings after folding in every match in order. With
	// one shared K factor the updates are zero-sum, so the ratings always
	// total the two starting ratings.
	Team1Elo float64
	Team2Elo float64
}

type matchOutcome struct {
	winner game.Team
	deals  int
}

// Runner pits two agent lineups against each other across many matches.
type Runner struct {
	team1  AgentFactory
	team2  AgentFactory
	logger *zap.Logger
}

// NewRunner creates a benchmark runner for the two lineups.
func NewRunner(team1, team2 AgentFactory, logger *zap.Logger) *Runner {
	return &Runner{team1: team1, team2: team2, logger: logger}
}

// Run executes the configured number of matches, bounded by the configured
// parallelism, and folds the outcomes into the result. Match seeds derive
// from cfg.Seed, so a run is reproducible regardless of scheduling.
func (r *Runner) Run(ctx context.Context, cfg Config) (Result, error) {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}

	seeds := make([]int64, cfg.Matches)
	seedSrc := rand.New(rand.NewSource(cfg.Seed))
	for i := range seeds {
		seeds[i] = seedSrc.Int63()
	}

	start := time.Now()
	outcomes := make([]matchOutcome, cfg.Matches)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	var mu sync.Mutex

	for i := 0; i < cfg.Matches; i++ {
		i := i
		g.Go(func() error {
			outcome, err := r.playMatch(ctx, seeds[i], cfg)
			if err != nil {
				return err
			}
			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	k := cfg.KFactor
	if k <= 0 {
		k = DefaultKFactor
	}
	team1Elo, team2Elo := cfg.Team1Rating, cfg.Team2Rating
	if team1Elo == 0 {
		team1Elo = InitialRating
	}
	if team2Elo == 0 {
		team2Elo = InitialRating
	}

	result := Result{Matches: cfg.Matches, Elapsed: time.Since(start)}
	for _, outcome := range outcomes {
		result.TotalDeals += outcome.deals
		actual := 0.0
		if outcome.winner == game.Team1 {
			result.Team1Wins++
			actual = 1
		} else {
			result.Team2Wins++
		}
		expected := ExpectedScore(team1Elo, team2Elo)
		team1Elo, team2Elo =
			NewRating(team1Elo, expected, actual, k),
			NewRating(team2Elo, 1-expected, 1-actual, k)
	}
	result.Team1Elo, result.Team2Elo = team1Elo, team2Elo

	r.logger.Info("benchmark complete",
		zap.Int("matches", result.Matches),
		zap.Int("team1_wins", result.Team1Wins),
		zap.Int("team2_wins", result.Team2Wins),
		zap.Int("total_deals", result.TotalDeals),
		zap.Float64("team1_elo", result.Team1Elo),
		zap.Float64("team2_elo", result.Team2Elo),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func (r *Runner) playMatch(ctx context.Context, seed int64, cfg Config) (matchOutcome, error) {
	rng := rand.New(rand.NewSource(seed))
	m := game.NewMatch(game.MatchConfig{
		FirstDealer: game.Seat(rng.Intn(4)),
		TargetScore: cfg.TargetScore,
		Rand:        rng,
	})

	agents := [4]player.Agent{
		game.SeatBottom: r.team1(rand.New(rand.NewSource(rng.Int63()))),
		game.SeatLeft:   r.team2(rand.New(rand.NewSource(rng.Int63()))),
		game.SeatTop:    r.team1(rand.New(rand.NewSource(rng.Int63()))),
		game.SeatRight:  r.team2(rand.New(rand.NewSource(rng.Int63()))),
	}

	runner := player.NewRunner(m, agents)
	if cfg.MaxDeals > 0 {
		runner.SetMaxDeals(cfg.MaxDeals)
	}

	snap, err := runner.Run(ctx)
	if err != nil {
		return matchOutcome{}, err
	}
	return matchOutcome{winner: snap.Winner, deals: snap.DealNumber}, nil
}
