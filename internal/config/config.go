// Package config loads the server configuration from a YAML file with
// environment variable overrides (GIRETRA_ prefix, dots become underscores).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Match   MatchConfig   `mapstructure:"match"`
	Bench   BenchConfig   `mapstructure:"bench"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MatchConfig carries the match rule knobs.
type MatchConfig struct {
	TargetScore int `mapstructure:"target_score"`
}

// BenchConfig controls benchmark runs.
type BenchConfig struct {
	Matches     int     `mapstructure:"matches"`
	Parallelism int     `mapstructure:"parallelism"`
	Seed        int64   `mapstructure:"seed"`
	MaxDeals    int     `mapstructure:"max_deals"`
	KFactor     float64 `mapstructure:"k_factor"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("match.target_score", 150)

	v.SetDefault("bench.matches", 100)
	v.SetDefault("bench.parallelism", 4)
	v.SetDefault("bench.seed", 1)
	v.SetDefault("bench.max_deals", 1000)
	v.SetDefault("bench.k_factor", 32)
}

// Load reads the configuration file at path. A missing file is not an error;
// defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("GIRETRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	if c.Match.TargetScore <= 0 {
		return fmt.Errorf("match.target_score must be positive, got %d", c.Match.TargetScore)
	}
	if c.Bench.Matches <= 0 {
		return fmt.Errorf("bench.matches must be positive, got %d", c.Bench.Matches)
	}
	if c.Bench.KFactor <= 0 {
		return fmt.Errorf("bench.k_factor must be positive, got %v", c.Bench.KFactor)
	}
	return nil
}
