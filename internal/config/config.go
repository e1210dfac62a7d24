package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	General     GeneralConfig     `toml:"general"`
	Feed        FeedConfig        `toml:"feed"`
	Scoring     ScoringConfig     `toml:"scoring"`
	Weights     map[string]int    `toml:"weights"`
	Correlation CorrelationConfig `toml:"correlation"`
	Kelly       KellyConfig       `toml:"kelly"`
	Backtest    BacktestConfig    `toml:"backtest"`
	Schedule    ScheduleConfig    `toml:"schedule"`
}

type GeneralConfig struct {
	DBPath   string `toml:"db_path"`
	LogLevel string `toml:"log_level"`
}

type FeedConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

type ScoringConfig struct {
	GoldenThreshold   float64 `toml:"golden_threshold"`
	SuperThreshold    float64 `toml:"super_threshold"`
	HarmonicThreshold float64 `toml:"harmonic_threshold"`
	SmashThreshold    float64 `toml:"smash_threshold"`
	StrongThreshold   float64 `toml:"strong_threshold"`
	PlayThreshold     float64 `toml:"play_threshold"`
	LeanThreshold     float64 `toml:"lean_threshold"`
	AlignmentMin      float64 `toml:"alignment_min"`
}

type CorrelationConfig struct {
	SameGamePenalty int `toml:"same_game_penalty"`
	SameTeamPenalty int `toml:"same_team_penalty"`
	DirectionalHigh int `toml:"directional_high_penalty"`
	DirectionalMed  int `toml:"directional_medium_penalty"`
	SpreadCluster   int `toml:"spread_cluster_penalty"`
	TotalCluster    int `toml:"total_cluster_penalty"`
}

type KellyConfig struct {
	Fraction    float64 `toml:"fraction"`
	MaxStakePct float64 `toml:"max_stake_pct"`
	MinEdge     float64 `toml:"min_edge"`
	Bankroll    float64 `toml:"bankroll"`
}

type BacktestConfig struct {
	Threshold int `toml:"threshold"`
}

type ScheduleConfig struct {
	// WatchSpec is a cron expression for watch mode scans.
	WatchSpec string `toml:"watch_spec"`
}

// Duration wraps time.Duration for TOML unmarshaling.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			DBPath:   "./data/linesight.db",
			LogLevel: "info",
		},
		Feed: FeedConfig{
			BaseURL: "http://localhost:8090",
			Timeout: Duration{15 * time.Second},
		},
		Scoring: ScoringConfig{
			GoldenThreshold:   80,
			SuperThreshold:    70,
			HarmonicThreshold: 60,
			SmashThreshold:    80,
			StrongThreshold:   70,
			PlayThreshold:     60,
			LeanThreshold:     55,
			AlignmentMin:      60,
		},
		Correlation: CorrelationConfig{
			SameGamePenalty: 30,
			SameTeamPenalty: 20,
			DirectionalHigh: 25,
			DirectionalMed:  15,
			SpreadCluster:   15,
			TotalCluster:    15,
		},
		Kelly: KellyConfig{
			Fraction:    0.25,
			MaxStakePct: 0.05,
			MinEdge:     0.01,
			Bankroll:    1000,
		},
		Backtest: BacktestConfig{
			Threshold: 60,
		},
		Schedule: ScheduleConfig{
			WatchSpec: "*/15 * * * *",
		},
	}
}
