package backtest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"linesight/internal/signal"
)

// keepRuns is how many past weight tests are retained.
const keepRuns = 50

// HistoryEntry is a stored weight-test run.
type HistoryEntry struct {
	ID           int64
	RanAt        time.Time
	Weights      signal.WeightTable
	Threshold    int
	PicksScored  int
	PicksPassing int
	Wins         int
	Losses       int
	Pushes       int
	HitRate      float64
	PnL          float64
}

// History records backtest runs in the weight_tests table so weight
// experiments can be compared over time.
type History struct {
	db *sql.DB
}

func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

// Save stores a run and prunes everything beyond the retention window.
func (h *History) Save(ctx context.Context, res Result) error {
	weights, err := json.Marshal(res.Weights)
	if err != nil {
		return fmt.Errorf("encoding weights: %w", err)
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO weight_tests (ran_at, weights, threshold, picks_scored, picks_passing, wins, losses, pushes, hit_rate, pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), string(weights), res.Threshold,
		res.PicksScored, res.PicksPassing, res.Wins, res.Losses, res.Pushes,
		res.HitRate, res.PnL)
	if err != nil {
		return fmt.Errorf("saving weight test: %w", err)
	}

	_, err = h.db.ExecContext(ctx, `
		DELETE FROM weight_tests WHERE id NOT IN (
			SELECT id FROM weight_tests ORDER BY id DESC LIMIT ?)`, keepRuns)
	if err != nil {
		return fmt.Errorf("pruning weight tests: %w", err)
	}
	return nil
}

// Recent returns up to n stored runs, newest first.
func (h *History) Recent(ctx context.Context, n int) ([]HistoryEntry, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, ran_at, weights, threshold, picks_scored, picks_passing, wins, losses, pushes, hit_rate, pnl
		FROM weight_tests ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("listing weight tests: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var ranAt, weights string
		if err := rows.Scan(&e.ID, &ranAt, &weights, &e.Threshold, &e.PicksScored,
			&e.PicksPassing, &e.Wins, &e.Losses, &e.Pushes, &e.HitRate, &e.PnL); err != nil {
			return nil, fmt.Errorf("scanning weight test: %w", err)
		}
		if e.RanAt, err = time.Parse(time.RFC3339, ranAt); err != nil {
			return nil, fmt.Errorf("parsing ran_at: %w", err)
		}
		if err := json.Unmarshal([]byte(weights), &e.Weights); err != nil {
			return nil, fmt.Errorf("decoding weights: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
