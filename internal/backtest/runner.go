// Package backtest replays graded picks under alternate signal weights
// to answer one question: with these weights, which picks would have
// cleared the bar, and how would they have done?
package backtest

import (
	"context"
	"fmt"
	"log/slog"

	"linesight/internal/pick"
	"linesight/internal/signal"
)

// Flat staking for replay P&L: 100 to win at standard -110.
const (
	flatStake     = 100.0
	flatWinPayout = flatStake * 100 / 110
)

// PickOutcome is one pick's replay under the test weights.
type PickOutcome struct {
	PickID        string      `json:"pick_id"`
	OldConfidence int         `json:"old_confidence"`
	NewConfidence int         `json:"new_confidence"`
	Passed        bool        `json:"passed"`
	Result        pick.Result `json:"result"`
	PnL           float64     `json:"pnl"`
}

// Result is a full backtest run.
type Result struct {
	Weights   signal.WeightTable `json:"weights"`
	Threshold int                `json:"threshold"`

	PicksScored  int     `json:"picks_scored"`  // graded picks replayed
	PicksPassing int     `json:"picks_passing"` // picks at or above threshold
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Pushes       int     `json:"pushes"`
	HitRate      float64 `json:"hit_rate"` // wins over decided, percent
	PnL          float64 `json:"pnl"`      // flat-stake units

	Outcomes []PickOutcome `json:"outcomes,omitempty"`
}

// DefaultThreshold is the confidence bar a replayed pick must clear.
const DefaultThreshold = 60

// Runner replays picks from a store. It never writes: a backtest cannot
// change history.
type Runner struct {
	store  pick.Store
	logger *slog.Logger
}

func NewRunner(store pick.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{store: store, logger: logger}
}

// Run replays every graded pick under weights. Ungraded picks carry no
// outcome and are skipped. A threshold of 0 or less uses the default.
func (r *Runner) Run(ctx context.Context, weights signal.WeightTable, threshold int) (Result, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	all, err := r.store.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("loading picks: %w", err)
	}

	res := Result{Weights: weights.Sanitize(), Threshold: threshold}
	for _, p := range all {
		if !p.Graded() || len(p.Signals) == 0 {
			continue
		}
		res.PicksScored++

		rescored := signal.ScoreFromSignals(p.Signals, weights)
		outcome := PickOutcome{
			PickID:        p.ID,
			OldConfidence: p.Confidence,
			NewConfidence: rescored.Confidence,
			Result:        p.Result,
		}

		if rescored.Confidence >= threshold {
			outcome.Passed = true
			res.PicksPassing++
			switch p.Result {
			case pick.Win:
				res.Wins++
				outcome.PnL = flatWinPayout
			case pick.Loss:
				res.Losses++
				outcome.PnL = -flatStake
			case pick.Push:
				res.Pushes++
			}
			res.PnL += outcome.PnL
		}
		res.Outcomes = append(res.Outcomes, outcome)
	}

	if decided := res.Wins + res.Losses; decided > 0 {
		res.HitRate = float64(res.Wins) / float64(decided) * 100
	}

	r.logger.Info("backtest complete",
		"scored", res.PicksScored, "passing", res.PicksPassing,
		"hit_rate", res.HitRate, "pnl", res.PnL)
	return res, nil
}
