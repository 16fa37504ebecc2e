// giretra-bench runs agent-vs-agent benchmark matches and prints the tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/giretra/giretra-server-go/internal/bench"
	"github.com/giretra/giretra-server-go/internal/config"
	"github.com/giretra/giretra-server-go/internal/player"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting benchmark",
		zap.String("version", version),
		zap.String("config", *configPath),
		zap.Int("matches", cfg.Bench.Matches),
		zap.Int("parallelism", cfg.Bench.Parallelism),
		zap.Int64("seed", cfg.Bench.Seed),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	random := func(rng *rand.Rand) player.Agent { return player.NewRandomAgent(rng) }

	runner := bench.NewRunner(random, random, logger)
	result, err := runner.Run(ctx, bench.Config{
		Matches:     cfg.Bench.Matches,
		Parallelism: cfg.Bench.Parallelism,
		Seed:        cfg.Bench.Seed,
		TargetScore: cfg.Match.TargetScore,
		MaxDeals:    cfg.Bench.MaxDeals,
		KFactor:     cfg.Bench.KFactor,
	})
	if err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}

	fmt.Printf("matches: %d\nteam1 wins: %d\nteam2 wins: %d\ntotal deals: %d\nteam1 elo: %.1f\nteam2 elo: %.1f\nelapsed: %s\n",
		result.Matches, result.Team1Wins, result.Team2Wins, result.TotalDeals,
		result.Team1Elo, result.Team2Elo, result.Elapsed)
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
