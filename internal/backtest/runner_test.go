package backtest

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"linesight/internal/db"
	"linesight/internal/pick"
	"linesight/internal/signal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gradedPick(id string, result pick.Result, signals []signal.Result) pick.Pick {
	gradedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	return pick.Pick{
		ID:         id,
		CreatedAt:  gradedAt.Add(-24 * time.Hour),
		Sport:      "NBA",
		HomeTeam:   "A",
		AwayTeam:   "B",
		Team:       "A",
		BetType:    signal.Spread,
		Side:       signal.Home,
		Odds:       -110,
		Confidence: 65,
		Tier:       "HARMONIC_ALIGNMENT",
		Recommendation: "PLAY",
		Signals:    signals,
		Result:     result,
		GradedAt:   &gradedAt,
	}
}

func strongSignals() []signal.Result {
	return []signal.Result{
		{Name: "sharp_money", Score: 90},
		{Name: "ensemble", Score: 70},
	}
}

func weakSignals() []signal.Result {
	return []signal.Result{
		{Name: "sharp_money", Score: 40},
		{Name: "ensemble", Score: 45},
	}
}

func TestRunReplaysGradedPicks(t *testing.T) {
	store := pick.NewMemoryStore()
	ctx := context.Background()

	for _, p := range []pick.Pick{
		gradedPick("p1", pick.Win, strongSignals()),
		gradedPick("p2", pick.Loss, strongSignals()),
		gradedPick("p3", pick.Push, strongSignals()),
		gradedPick("p4", pick.Win, weakSignals()), // filtered out by threshold
	} {
		if err := store.Put(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	// Ungraded pick must be ignored entirely.
	ungraded := gradedPick("p5", "", strongSignals())
	ungraded.Result = ""
	ungraded.GradedAt = nil
	if err := store.Put(ctx, ungraded); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(store, discardLogger())
	res, err := r.Run(ctx, signal.DefaultWeights(), 60)
	if err != nil {
		t.Fatal(err)
	}

	if res.PicksScored != 4 {
		t.Errorf("scored = %d, want 4 graded picks", res.PicksScored)
	}
	if res.PicksPassing != 3 {
		t.Errorf("passing = %d, want 3 (weak pick filtered)", res.PicksPassing)
	}
	if res.Wins != 1 || res.Losses != 1 || res.Pushes != 1 {
		t.Errorf("record = %d-%d-%d, want 1-1-1", res.Wins, res.Losses, res.Pushes)
	}
	if res.HitRate != 50 {
		t.Errorf("hit rate = %f, want 50 (push excluded)", res.HitRate)
	}
	// One win at +90.91, one loss at -100, push flat.
	if math.Abs(res.PnL-(flatWinPayout-flatStake)) > 1e-9 {
		t.Errorf("pnl = %f, want %f", res.PnL, flatWinPayout-flatStake)
	}
}

func TestRunEchoesSanitizedWeights(t *testing.T) {
	store := pick.NewMemoryStore()
	r := NewRunner(store, discardLogger())

	res, err := r.Run(context.Background(), signal.WeightTable{"sharp_money": -3, "ensemble": 12}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Threshold != DefaultThreshold {
		t.Errorf("threshold = %d, want default %d", res.Threshold, DefaultThreshold)
	}
	if res.Weights["sharp_money"] != 0 || res.Weights["ensemble"] != 12 {
		t.Errorf("weights not sanitized/echoed: %+v", res.Weights)
	}
}

func TestRunNeverMutatesStore(t *testing.T) {
	store := pick.NewMemoryStore()
	ctx := context.Background()
	original := gradedPick("p1", pick.Win, strongSignals())
	if err := store.Put(ctx, original); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(store, discardLogger())
	if _, err := r.Run(ctx, signal.WeightTable{"sharp_money": 100}, 60); err != nil {
		t.Fatal(err)
	}

	after, err := store.Get(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if after.Confidence != original.Confidence || after.Signals[0].Score != 90 {
		t.Error("backtest mutated the stored pick")
	}
}

func TestRunAlternateWeightsShiftConfidence(t *testing.T) {
	store := pick.NewMemoryStore()
	ctx := context.Background()
	p := gradedPick("p1", pick.Win, []signal.Result{
		{Name: "sharp_money", Score: 90},
		{Name: "numerology", Score: 30},
	})
	if err := store.Put(ctx, p); err != nil {
		t.Fatal(err)
	}
	r := NewRunner(store, discardLogger())

	sharpHeavy, err := r.Run(ctx, signal.WeightTable{"sharp_money": 50, "numerology": 1}, 60)
	if err != nil {
		t.Fatal(err)
	}
	numerologyHeavy, err := r.Run(ctx, signal.WeightTable{"sharp_money": 1, "numerology": 50}, 60)
	if err != nil {
		t.Fatal(err)
	}

	if sharpHeavy.Outcomes[0].NewConfidence <= numerologyHeavy.Outcomes[0].NewConfidence {
		t.Errorf("weight shift had no effect: %d vs %d",
			sharpHeavy.Outcomes[0].NewConfidence, numerologyHeavy.Outcomes[0].NewConfidence)
	}
	if sharpHeavy.PicksPassing != 1 || numerologyHeavy.PicksPassing != 0 {
		t.Errorf("threshold filtering wrong: %d / %d passing",
			sharpHeavy.PicksPassing, numerologyHeavy.PicksPassing)
	}
}

func TestHistorySaveAndPrune(t *testing.T) {
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()
	if err := db.Migrate(database); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(database)
	ctx := context.Background()

	for i := 0; i < keepRuns+10; i++ {
		res := Result{
			Weights:   signal.WeightTable{"sharp_money": i},
			Threshold: 60,
			Wins:      i,
		}
		if err := h.Save(ctx, res); err != nil {
			t.Fatal(err)
		}
	}

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM weight_tests`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != keepRuns {
		t.Errorf("retained %d runs, want %d", count, keepRuns)
	}

	recent, err := h.Recent(ctx, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 5 {
		t.Fatalf("recent = %d entries, want 5", len(recent))
	}
	// Newest first: the last saved run had the highest win count.
	if recent[0].Wins != keepRuns+9 {
		t.Errorf("newest run wins = %d, want %d", recent[0].Wins, keepRuns+9)
	}
	if recent[0].Weights["sharp_money"] != keepRuns+9 {
		t.Errorf("weights not round-tripped: %+v", recent[0].Weights)
	}
}
