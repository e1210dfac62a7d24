package clv

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"linesight/internal/pick"
	"linesight/internal/signal"
)

var testClock = time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)

func newTestTracker(store pick.Store) *Tracker {
	t := NewTracker(store, signal.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.now = func() time.Time { return testClock }
	return t
}

func spreadGame() *signal.GameContext {
	return &signal.GameContext{
		Sport:        "NBA",
		HomeTeam:     "Lakers",
		AwayTeam:     "Celtics",
		CommenceTime: testClock.Add(4 * time.Hour),
		BetType:      signal.Spread,
		Side:         signal.Home,
		Line:         -3,
		HasLine:      true,
		Odds:         -110,
	}
}

func TestRecordStoresScoredPick(t *testing.T) {
	store := pick.NewMemoryStore()
	tr := newTestTracker(store)
	ctx := context.Background()

	p, err := tr.Record(ctx, spreadGame(), "Lakers")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Error("pick missing identity")
	}
	if p.Confidence == 0 || p.Tier == "" || p.Recommendation == "" {
		t.Errorf("pick missing scoring: %+v", p)
	}
	if len(p.Signals) == 0 {
		t.Error("signal snapshot missing")
	}
	if p.Line == nil || *p.Line != -3 {
		t.Errorf("line = %v, want -3", p.Line)
	}

	stored, err := store.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Confidence != p.Confidence {
		t.Error("stored pick differs from returned pick")
	}
}

func TestRecordValidation(t *testing.T) {
	tr := newTestTracker(pick.NewMemoryStore())
	ctx := context.Background()

	if _, err := tr.Record(ctx, spreadGame(), "  "); err == nil {
		t.Error("blank team should be rejected")
	}

	badType := spreadGame()
	badType.BetType = "parlay"
	if _, err := tr.Record(ctx, badType, "Lakers"); err == nil {
		t.Error("unknown bet type should be rejected")
	}

	badSide := spreadGame()
	badSide.Side = "MIDDLE"
	if _, err := tr.Record(ctx, badSide, "Lakers"); err == nil {
		t.Error("unknown side should be rejected")
	}

	badTotal := spreadGame()
	badTotal.BetType = signal.Total
	badTotal.Side = signal.Home
	if _, err := tr.Record(ctx, badTotal, "Lakers"); err == nil {
		t.Error("totals must pick over or under")
	}
}

type failingStore struct {
	puts int
}

func (f *failingStore) Put(context.Context, pick.Pick) error { f.puts++; return errors.New("disk gone") }
func (f *failingStore) Get(context.Context, string) (pick.Pick, error) {
	return pick.Pick{}, errors.New("disk gone")
}
func (f *failingStore) All(context.Context) ([]pick.Pick, error) {
	return nil, errors.New("disk gone")
}
func (f *failingStore) Clear(context.Context) error { return errors.New("disk gone") }

func TestRecordSurvivesStoreFailure(t *testing.T) {
	store := &failingStore{}
	tr := newTestTracker(store)

	p, err := tr.Record(context.Background(), spreadGame(), "Lakers")
	if err != nil {
		t.Fatalf("write failure must not fail Record: %v", err)
	}
	if p.ID == "" || p.Confidence == 0 {
		t.Error("in-memory pick should still be complete")
	}
	if store.puts != 1 {
		t.Error("store should have been attempted")
	}
}

func TestReadsDegradeToEmptyOnStoreFailure(t *testing.T) {
	tr := newTestTracker(&failingStore{})
	ctx := context.Background()

	if got := tr.Recent(ctx, 10); got != nil {
		t.Error("Recent should degrade to empty")
	}
	if got := tr.PendingGrades(ctx); got != nil {
		t.Error("PendingGrades should degrade to empty")
	}
	if r := tr.Report(ctx); r.TotalPicks != 0 {
		t.Error("Report should degrade to zero")
	}
}

func TestClosingLineAndGradeLifecycle(t *testing.T) {
	store := pick.NewMemoryStore()
	tr := newTestTracker(store)
	ctx := context.Background()

	p, err := tr.Record(ctx, spreadGame(), "Lakers")
	if err != nil {
		t.Fatal(err)
	}

	closing := -5.0
	withClose, err := tr.RecordClosingLine(ctx, p.ID, &closing, nil)
	if err != nil {
		t.Fatal(err)
	}
	if withClose.CLV == nil || *withClose.CLV != 2 {
		t.Fatalf("clv = %v, want +2", withClose.CLV)
	}

	graded, err := tr.Grade(ctx, p.ID, pick.Win)
	if err != nil {
		t.Fatal(err)
	}
	if graded.Result != pick.Win || graded.GradedAt == nil {
		t.Errorf("grade not applied: %+v", graded)
	}
	if graded.CLV == nil || *graded.CLV != 2 {
		t.Error("grading must not lose CLV")
	}

	// Re-grading overwrites.
	regraded, err := tr.Grade(ctx, p.ID, pick.Loss)
	if err != nil {
		t.Fatal(err)
	}
	if regraded.Result != pick.Loss {
		t.Error("re-grade should overwrite the result")
	}
}

func TestGradeTwiceLeavesOnePick(t *testing.T) {
	store := pick.NewMemoryStore()
	tr := newTestTracker(store)
	ctx := context.Background()

	p, err := tr.Record(ctx, spreadGame(), "Lakers")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tr.Grade(ctx, p.ID, pick.Win); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Grade(ctx, p.ID, pick.Win); err != nil {
		t.Fatal(err)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("stored picks = %d, want exactly one after a double grade", len(all))
	}
	if all[0].Result != pick.Win || all[0].GradedAt == nil {
		t.Errorf("stored pick not graded as a win: %+v", all[0])
	}
}

func TestGradeUnknownPick(t *testing.T) {
	tr := newTestTracker(pick.NewMemoryStore())
	if _, err := tr.Grade(context.Background(), "nope", pick.Win); !errors.Is(err, pick.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGradeInvalidResult(t *testing.T) {
	tr := newTestTracker(pick.NewMemoryStore())
	if _, err := tr.Grade(context.Background(), "any", "MAYBE"); err == nil {
		t.Error("invalid result should be rejected before the store is hit")
	}
}

func TestRecordClosingLineRejectsZeroOdds(t *testing.T) {
	store := pick.NewMemoryStore()
	tr := newTestTracker(store)
	ctx := context.Background()

	p, err := tr.Record(ctx, spreadGame(), "Lakers")
	if err != nil {
		t.Fatal(err)
	}
	zero := 0
	if _, err := tr.RecordClosingLine(ctx, p.ID, nil, &zero); err == nil {
		t.Error("closing odds of 0 should be rejected")
	}
}

func TestPendingLists(t *testing.T) {
	store := pick.NewMemoryStore()
	tr := newTestTracker(store)
	ctx := context.Background()

	// Game long over, never closed, never graded.
	old := spreadGame()
	old.CommenceTime = testClock.Add(-5 * time.Hour)
	overdue, err := tr.Record(ctx, old, "Lakers")
	if err != nil {
		t.Fatal(err)
	}

	// Game in progress: closing line due, grade not yet.
	live := spreadGame()
	live.CommenceTime = testClock.Add(-1 * time.Hour)
	inProgress, err := tr.Record(ctx, live, "Lakers")
	if err != nil {
		t.Fatal(err)
	}

	// Game in the future: nothing due.
	if _, err := tr.Record(ctx, spreadGame(), "Lakers"); err != nil {
		t.Fatal(err)
	}

	closings := tr.PendingClosingLines(ctx)
	if len(closings) != 2 {
		t.Fatalf("pending closings = %d, want 2", len(closings))
	}

	grades := tr.PendingGrades(ctx)
	if len(grades) != 1 || grades[0].ID != overdue.ID {
		t.Fatalf("pending grades = %+v, want only the overdue pick", grades)
	}

	// Captured closing removes it from the closing queue but it stays
	// gradable.
	closing := -4.0
	if _, err := tr.RecordClosingLine(ctx, overdue.ID, &closing, nil); err != nil {
		t.Fatal(err)
	}
	closings = tr.PendingClosingLines(ctx)
	if len(closings) != 1 || closings[0].ID != inProgress.ID {
		t.Errorf("closing queue should only hold the live game now: %+v", closings)
	}
	if grades := tr.PendingGrades(ctx); len(grades) != 1 {
		t.Error("capturing the close must not ungrade the pick")
	}
}

func TestRecentOrder(t *testing.T) {
	store := pick.NewMemoryStore()
	tr := newTestTracker(store)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		tr.now = func() time.Time { return testClock.Add(time.Duration(i) * time.Minute) }
		p, err := tr.Record(ctx, spreadGame(), "Lakers")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, p.ID)
	}

	recent := tr.Recent(ctx, 2)
	if len(recent) != 2 {
		t.Fatalf("recent = %d picks, want 2", len(recent))
	}
	if recent[0].ID != ids[2] || recent[1].ID != ids[1] {
		t.Errorf("recent order wrong: %s, %s", recent[0].ID, recent[1].ID)
	}
}
