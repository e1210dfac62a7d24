package clv

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"linesight/internal/pick"
	"linesight/internal/signal"
)

// gradeDelay is how long after tip-off a pick becomes eligible for grading.
const gradeDelay = 3 * time.Hour

// Tracker is the pick lifecycle: score at entry, capture the closing
// line once the game starts, grade once it ends. Storage failures on
// the write path are logged but never lose the in-memory pick; the read
// path degrades to empty rather than failing the caller.
type Tracker struct {
	store  pick.Store
	scorer *signal.Scorer
	logger *slog.Logger
	now    func() time.Time
}

func NewTracker(store pick.Store, scorer *signal.Scorer, logger *slog.Logger) *Tracker {
	if scorer == nil {
		scorer = signal.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		store:  store,
		scorer: scorer,
		logger: logger,
		now:    time.Now,
	}
}

// Record scores the game context, snapshots the signals and stores the
// pick. team is the label of the side backed (a team name for sides,
// OVER/UNDER for totals).
func (t *Tracker) Record(ctx context.Context, game *signal.GameContext, team string) (pick.Pick, error) {
	if err := validateEntry(game, team); err != nil {
		return pick.Pick{}, err
	}

	scoring := t.scorer.Score(game)
	now := t.now().UTC()

	p := pick.Pick{
		ID:             newPickID(now),
		CreatedAt:      now,
		Sport:          game.Sport,
		HomeTeam:       game.HomeTeam,
		AwayTeam:       game.AwayTeam,
		Team:           team,
		BetType:        game.BetType,
		Side:           game.Side,
		Odds:           game.Odds,
		CommenceTime:   game.CommenceTime,
		Confidence:     scoring.Confidence,
		Tier:           scoring.Tier,
		Recommendation: scoring.Recommendation,
		Headline:       scoring.Headline,
		Signals:        scoring.Signals,
	}
	if game.HasLine {
		line := game.Line
		p.Line = &line
	}

	if err := t.store.Put(ctx, p); err != nil {
		t.logger.Warn("pick not persisted, continuing with in-memory copy",
			"pick_id", p.ID, "error", err)
	}
	t.logger.Info("pick recorded",
		"pick_id", p.ID, "sport", p.Sport, "team", p.Team,
		"confidence", p.Confidence, "tier", p.Tier, "recommendation", p.Recommendation)
	return p, nil
}

// RecordClosingLine captures the market at close and computes CLV.
func (t *Tracker) RecordClosingLine(ctx context.Context, id string, closingLine *float64, closingOdds *int) (pick.Pick, error) {
	p, err := t.store.Get(ctx, id)
	if err != nil {
		return pick.Pick{}, err
	}

	if closingOdds != nil {
		if err := validOdds(*closingOdds); err != nil {
			return pick.Pick{}, err
		}
	}
	p.ClosingLine = closingLine
	p.ClosingOdds = closingOdds
	if err := Compute(&p); err != nil {
		return pick.Pick{}, err
	}

	if err := t.store.Put(ctx, p); err != nil {
		t.logger.Warn("closing line not persisted", "pick_id", id, "error", err)
	}
	if p.CLV != nil {
		t.logger.Info("closing line recorded", "pick_id", id, "clv", *p.CLV)
	}
	return p, nil
}

// Grade sets the final outcome. Grading is an idempotent overwrite: a
// re-grade with a corrected result simply replaces the previous one.
// CLV is recomputed in case closing data arrived between grades.
func (t *Tracker) Grade(ctx context.Context, id string, result pick.Result) (pick.Pick, error) {
	if !result.Valid() {
		return pick.Pick{}, fmt.Errorf("invalid result %q", result)
	}

	p, err := t.store.Get(ctx, id)
	if err != nil {
		return pick.Pick{}, err
	}

	now := t.now().UTC()
	p.Result = result
	p.GradedAt = &now
	if err := Compute(&p); err != nil {
		return pick.Pick{}, err
	}

	if err := t.store.Put(ctx, p); err != nil {
		t.logger.Warn("grade not persisted", "pick_id", id, "error", err)
	}
	t.logger.Info("pick graded", "pick_id", id, "result", string(result))
	return p, nil
}

// PendingClosingLines lists picks whose game has started but whose
// closing market was never captured.
func (t *Tracker) PendingClosingLines(ctx context.Context) []pick.Pick {
	now := t.now()
	return t.filter(ctx, func(p pick.Pick) bool {
		return !p.CommenceTime.IsZero() && !p.CommenceTime.After(now) && !p.HasClosing()
	})
}

// PendingGrades lists picks whose game should be over but that have no
// result yet.
func (t *Tracker) PendingGrades(ctx context.Context) []pick.Pick {
	cutoff := t.now().Add(-gradeDelay)
	return t.filter(ctx, func(p pick.Pick) bool {
		return !p.CommenceTime.IsZero() && !p.CommenceTime.After(cutoff) && !p.Graded()
	})
}

// Recent returns the n most recent picks, newest first.
func (t *Tracker) Recent(ctx context.Context, n int) []pick.Pick {
	all := t.all(ctx)
	if len(all) == 0 || n <= 0 {
		return nil
	}
	out := make([]pick.Pick, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out
}

// Report builds the aggregate performance report over every pick.
func (t *Tracker) Report(ctx context.Context) Report {
	return BuildReport(t.all(ctx))
}

func (t *Tracker) all(ctx context.Context) []pick.Pick {
	all, err := t.store.All(ctx)
	if err != nil {
		t.logger.Warn("pick store unreadable, treating as empty", "error", err)
		return nil
	}
	return all
}

func (t *Tracker) filter(ctx context.Context, keep func(pick.Pick) bool) []pick.Pick {
	var out []pick.Pick
	for _, p := range t.all(ctx) {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func validateEntry(game *signal.GameContext, team string) error {
	if strings.TrimSpace(team) == "" {
		return fmt.Errorf("pick needs a team")
	}
	switch game.BetType {
	case signal.Spread, signal.Total, signal.Moneyline, signal.Prop:
	default:
		return fmt.Errorf("unknown bet type %q", game.BetType)
	}
	switch game.Side {
	case signal.Home, signal.Away, signal.Over, signal.Under:
	default:
		return fmt.Errorf("unknown side %q", game.Side)
	}
	if game.BetType == signal.Total && game.Side != signal.Over && game.Side != signal.Under {
		return fmt.Errorf("totals must pick OVER or UNDER")
	}
	return nil
}

func newPickID(now time.Time) string {
	return fmt.Sprintf("pick_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}
