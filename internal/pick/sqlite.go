package pick

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"linesight/internal/signal"
)

// SQLiteStore persists picks in the picks table. Signal snapshots are
// stored as a JSON column; everything queried on gets its own column.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const pickColumns = `id, created_at, sport, home_team, away_team, team, bet_type, side,
	line, odds, commence_time, confidence, tier, recommendation, headline, signals,
	closing_line, closing_odds, clv, clv_cents, result, graded_at`

func (s *SQLiteStore) Put(ctx context.Context, p Pick) error {
	signals, err := json.Marshal(p.Signals)
	if err != nil {
		return fmt.Errorf("encoding signals: %w", err)
	}

	var commence any
	if !p.CommenceTime.IsZero() {
		commence = p.CommenceTime.UTC().Format(time.RFC3339)
	}
	var result any
	if p.Result != "" {
		result = string(p.Result)
	}
	var gradedAt any
	if p.GradedAt != nil {
		gradedAt = p.GradedAt.UTC().Format(time.RFC3339)
	}

	_, err = s.db.ExecContext(ctx, `INSERT OR REPLACE INTO picks (`+pickColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CreatedAt.UTC().Format(time.RFC3339), p.Sport, p.HomeTeam, p.AwayTeam,
		p.Team, string(p.BetType), string(p.Side),
		nullableFloat(p.Line), p.Odds, commence,
		p.Confidence, p.Tier, p.Recommendation, p.Headline, string(signals),
		nullableFloat(p.ClosingLine), nullableInt(p.ClosingOdds),
		nullableFloat(p.CLV), nullableFloat(p.CLVCents), result, gradedAt)
	if err != nil {
		return fmt.Errorf("storing pick %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (Pick, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+pickColumns+` FROM picks WHERE id = ?`, id)
	p, err := scanPick(row)
	if err == sql.ErrNoRows {
		return Pick{}, ErrNotFound
	}
	if err != nil {
		return Pick{}, fmt.Errorf("loading pick %s: %w", id, err)
	}
	return p, nil
}

func (s *SQLiteStore) All(ctx context.Context) ([]Pick, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+pickColumns+` FROM picks ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing picks: %w", err)
	}
	defer rows.Close()

	var picks []Pick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM picks`); err != nil {
		return fmt.Errorf("clearing picks: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPick(row rowScanner) (Pick, error) {
	var p Pick
	var createdAt, betType, side, signals string
	var commence, headline, result, gradedAt sql.NullString
	var line, clv, clvCents sql.NullFloat64
	var closingLine sql.NullFloat64
	var closingOdds sql.NullInt64

	err := row.Scan(&p.ID, &createdAt, &p.Sport, &p.HomeTeam, &p.AwayTeam, &p.Team,
		&betType, &side, &line, &p.Odds, &commence,
		&p.Confidence, &p.Tier, &p.Recommendation, &headline, &signals,
		&closingLine, &closingOdds, &clv, &clvCents, &result, &gradedAt)
	if err != nil {
		return Pick{}, err
	}

	p.BetType = signal.BetType(betType)
	p.Side = signal.Side(side)
	p.Headline = headline.String
	p.Result = Result(result.String)

	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return Pick{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if commence.Valid {
		if p.CommenceTime, err = time.Parse(time.RFC3339, commence.String); err != nil {
			return Pick{}, fmt.Errorf("parsing commence_time: %w", err)
		}
	}
	if gradedAt.Valid {
		t, err := time.Parse(time.RFC3339, gradedAt.String)
		if err != nil {
			return Pick{}, fmt.Errorf("parsing graded_at: %w", err)
		}
		p.GradedAt = &t
	}

	if line.Valid {
		v := line.Float64
		p.Line = &v
	}
	if closingLine.Valid {
		v := closingLine.Float64
		p.ClosingLine = &v
	}
	if closingOdds.Valid {
		v := int(closingOdds.Int64)
		p.ClosingOdds = &v
	}
	if clv.Valid {
		v := clv.Float64
		p.CLV = &v
	}
	if clvCents.Valid {
		v := clvCents.Float64
		p.CLVCents = &v
	}

	if err := json.Unmarshal([]byte(signals), &p.Signals); err != nil {
		return Pick{}, fmt.Errorf("decoding signals: %w", err)
	}
	return p, nil
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}
