package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"linesight/internal/backtest"
	"linesight/internal/clv"
	"linesight/internal/config"
	"linesight/internal/correlation"
	"linesight/internal/db"
	"linesight/internal/feed"
	"linesight/internal/kelly"
	"linesight/internal/pick"
	sig "linesight/internal/signal"
)

func main() {
	scanMode := flag.Bool("scan", false, "Fetch the slate, score it and record qualifying picks")
	watchMode := flag.Bool("watch", false, "Run scans on the configured cron schedule")
	reportMode := flag.Bool("report", false, "Print the performance report")
	clearMode := flag.Bool("clear", false, "Delete every tracked pick")

	backtestMode := flag.Bool("backtest", false, "Replay graded picks under alternate weights")
	weightsJSON := flag.String("weights", "", `Weight overrides as JSON, e.g. '{"sharp_money":25}'`)
	threshold := flag.Int("threshold", 0, "Confidence threshold for backtest (0 = config value)")

	gradeID := flag.String("grade", "", "Pick id to grade")
	gradeResult := flag.String("result", "", "Result for -grade: WIN, LOSS or PUSH")
	closeID := flag.String("close", "", "Pick id to record a closing line for")
	closingLine := flag.Float64("closing-line", 0, "Closing line for -close")
	closingOdds := flag.Int("closing-odds", 0, "Closing American odds for -close")
	flag.Parse()

	configPath := "config.toml"
	if p := os.Getenv("LINESIGHT_CONFIG_PATH"); p != "" {
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		// A missing config file is fine; everything has a default.
		cfg = config.DefaultConfig()
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.General.LogLevel),
	})))
	slog.Info("linesight starting")

	database, err := db.Open(cfg.General.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database initialized", "path", cfg.General.DBPath)

	store := pick.NewSQLiteStore(database)
	scorer := buildScorer(cfg)
	tracker := clv.NewTracker(store, scorer, slog.Default())
	detector := correlation.NewDetector(buildPolicy(cfg))
	sizer := kelly.NewSizer(kelly.Config{
		Fraction:    cfg.Kelly.Fraction,
		MaxStakePct: cfg.Kelly.MaxStakePct,
		MinEdge:     cfg.Kelly.MinEdge,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch {
	case *clearMode:
		if err := store.Clear(ctx); err != nil {
			slog.Error("clear failed", "error", err)
			os.Exit(1)
		}
		slog.Info("all picks cleared")

	case *backtestMode:
		weights, err := parseWeights(*weightsJSON)
		if err != nil {
			slog.Error("bad -weights", "error", err)
			os.Exit(1)
		}
		th := *threshold
		if th <= 0 {
			th = cfg.Backtest.Threshold
		}
		runner := backtest.NewRunner(store, slog.Default())
		res, err := runner.Run(ctx, weights, th)
		if err != nil {
			slog.Error("backtest failed", "error", err)
			os.Exit(1)
		}
		if err := backtest.NewHistory(database).Save(ctx, res); err != nil {
			slog.Warn("backtest result not saved", "error", err)
		}
		printBacktest(res)

	case *gradeID != "":
		p, err := tracker.Grade(ctx, *gradeID, pick.Result(*gradeResult))
		if err != nil {
			slog.Error("grade failed", "pick_id", *gradeID, "error", err)
			os.Exit(1)
		}
		fmt.Printf("%s graded %s\n", p.ID, p.Result)

	case *closeID != "":
		var line *float64
		if *closingLine != 0 {
			line = closingLine
		}
		var odds *int
		if *closingOdds != 0 {
			odds = closingOdds
		}
		p, err := tracker.RecordClosingLine(ctx, *closeID, line, odds)
		if err != nil {
			slog.Error("closing line failed", "pick_id", *closeID, "error", err)
			os.Exit(1)
		}
		if p.CLV != nil {
			fmt.Printf("%s closed, CLV %+.2f\n", p.ID, *p.CLV)
		} else {
			fmt.Printf("%s closed\n", p.ID)
		}

	case *reportMode:
		printReport(tracker.Report(ctx))

	case *watchMode:
		runWatch(ctx, cancel, cfg, tracker, detector, sizer)

	case *scanMode:
		scan(ctx, cfg, tracker, detector, sizer, feed.NewCache(seenTTL))

	default:
		// Scanning is also the default action.
		scan(ctx, cfg, tracker, detector, sizer, feed.NewCache(seenTTL))
	}

	slog.Info("linesight stopped")
}

// seenTTL is how long a scanned game is held in the slate cache so
// repeat scans do not record duplicate picks.
const seenTTL = 6 * time.Hour

// scan fetches the slate, scores every game and records picks that
// clear the play bar, with a correlation check against the active slate.
func scan(ctx context.Context, cfg *config.Config, tracker *clv.Tracker, detector *correlation.Detector, sizer *kelly.Sizer, seen *feed.Cache) {
	client := feed.NewClient(cfg.Feed.BaseURL, slog.Default())
	games, err := client.Games(ctx)
	if err != nil {
		slog.Error("feed fetch failed", "error", err)
		return
	}

	active := tracker.Recent(ctx, 50)
	var slate []pick.Pick
	for _, p := range active {
		if !p.Graded() {
			slate = append(slate, p)
		}
	}

	for _, game := range games {
		if _, ok := seen.Get(feed.Key(game)); ok {
			continue
		}
		seen.Set(game)

		p, err := tracker.Record(ctx, game, pickedTeam(game))
		if err != nil {
			slog.Warn("game skipped", "home", game.HomeTeam, "away", game.AwayTeam, "error", err)
			continue
		}
		if p.Recommendation == sig.RecPass || p.Recommendation == sig.RecLean {
			continue
		}

		before, after := detector.CheckNewPick(slate, p)
		slate = append(slate, p)

		stake, err := sizer.Size(cfg.Kelly.Bankroll, kelly.ProbFromConfidence(p.Confidence), entryOdds(p), after.StakeMultiplier)
		if err != nil {
			slog.Warn("stake sizing failed", "pick_id", p.ID, "error", err)
			continue
		}
		slog.Info("qualifying pick",
			"pick_id", p.ID,
			"matchup", fmt.Sprintf("%s @ %s", p.AwayTeam, p.HomeTeam),
			"confidence", p.Confidence,
			"tier", p.Tier,
			"recommendation", p.Recommendation,
			"diversification", after.Diversification,
			"diversification_delta", after.Diversification-before.Diversification,
			"stake", stake.String())
	}
}

// runWatch runs scans on the configured cron spec until interrupted.
func runWatch(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, tracker *clv.Tracker, detector *correlation.Detector, sizer *kelly.Sizer) {
	seen := feed.NewCache(seenTTL)
	c := cron.New()
	_, err := c.AddFunc(cfg.Schedule.WatchSpec, func() {
		scan(ctx, cfg, tracker, detector, sizer, seen)
	})
	if err != nil {
		slog.Error("bad watch schedule", "spec", cfg.Schedule.WatchSpec, "error", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigCh
		slog.Info("received signal, shutting down", "signal", s.String())
		cancel()
	}()

	slog.Info("watch mode", "spec", cfg.Schedule.WatchSpec)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
}

func buildScorer(cfg *config.Config) *sig.Scorer {
	weights := sig.DefaultWeights()
	for name, w := range cfg.Weights {
		weights[name] = w
	}
	return sig.NewScorer(weights, sig.DefaultSportModifiers(), sig.Thresholds{
		Golden:   cfg.Scoring.GoldenThreshold,
		Super:    cfg.Scoring.SuperThreshold,
		Harmonic: cfg.Scoring.HarmonicThreshold,
		Smash:    cfg.Scoring.SmashThreshold,
		Strong:   cfg.Scoring.StrongThreshold,
		Play:     cfg.Scoring.PlayThreshold,
		Lean:     cfg.Scoring.LeanThreshold,
		AlignMin: cfg.Scoring.AlignmentMin,
	})
}

func buildPolicy(cfg *config.Config) correlation.Policy {
	policy := correlation.DefaultPolicy()
	policy.SameGamePenalty = cfg.Correlation.SameGamePenalty
	policy.SameTeamPenalty = cfg.Correlation.SameTeamPenalty
	policy.DirectionalHighPenalty = cfg.Correlation.DirectionalHigh
	policy.DirectionalMediumPenalty = cfg.Correlation.DirectionalMed
	policy.SpreadClusterPenalty = cfg.Correlation.SpreadCluster
	policy.TotalClusterPenalty = cfg.Correlation.TotalCluster
	return policy
}

func parseWeights(s string) (sig.WeightTable, error) {
	weights := sig.DefaultWeights()
	if s == "" {
		return weights, nil
	}
	var overrides map[string]int
	if err := json.Unmarshal([]byte(s), &overrides); err != nil {
		return nil, fmt.Errorf("parsing weights: %w", err)
	}
	for name, w := range overrides {
		weights[name] = w
	}
	return weights, nil
}

// pickedTeam labels the side being tracked for a scored game.
func pickedTeam(game *sig.GameContext) string {
	switch game.Side {
	case sig.Away:
		return game.AwayTeam
	case sig.Over, sig.Under:
		return string(game.Side)
	default:
		return game.HomeTeam
	}
}

func entryOdds(p pick.Pick) int {
	if p.Odds != 0 {
		return p.Odds
	}
	return -110
}

func printBacktest(res backtest.Result) {
	fmt.Printf("Backtest: %d picks scored, %d passed threshold %d\n",
		res.PicksScored, res.PicksPassing, res.Threshold)
	fmt.Printf("Record: %d-%d-%d  hit rate %.1f%%  P&L %+.2f units\n",
		res.Wins, res.Losses, res.Pushes, res.HitRate, res.PnL/100)
}

func printReport(r clv.Report) {
	fmt.Printf("Picks: %d tracked, %d graded (%d-%d-%d)\n",
		r.TotalPicks, r.Graded, r.Wins, r.Losses, r.Pushes)
	if r.Wins+r.Losses > 0 {
		fmt.Printf("Win rate: %.1f%%\n", r.WinRate)
	}
	if r.CLVTracked > 0 {
		fmt.Printf("CLV: %+.2f avg over %d picks, %.0f%% positive\n",
			r.AvgCLV, r.CLVTracked, r.PositiveCLVRate*100)
	}
	for _, line := range clv.Insights(r) {
		fmt.Println("  - " + line)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
