// Package pick holds the durable record of tracked picks: what was bet,
// at what line and price, how the scorer saw it at entry, and how it
// graded against the closing market.
package pick

import (
	"time"

	"linesight/internal/signal"
)

// Result is the graded outcome of a pick. The zero value means ungraded.
type Result string

const (
	Win  Result = "WIN"
	Loss Result = "LOSS"
	Push Result = "PUSH"
)

// Valid reports whether r is one of the three graded outcomes.
func (r Result) Valid() bool {
	return r == Win || r == Loss || r == Push
}

// Pick is one tracked pick. Entry fields are immutable after Record;
// closing and grading fields are filled in later. Line is signed from
// the picked side's perspective and nil for markets without one.
type Pick struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Sport    string         `json:"sport"`
	HomeTeam string         `json:"home_team"`
	AwayTeam string         `json:"away_team"`
	Team     string         `json:"team"` // the side actually backed
	BetType  signal.BetType `json:"bet_type"`
	Side     signal.Side    `json:"side"`

	Line         *float64  `json:"line,omitempty"`
	Odds         int       `json:"odds"`
	CommenceTime time.Time `json:"commence_time"`

	// Scorer output snapshotted at entry. Signals carry the raw scores
	// so confidence can be re-derived under alternate weights later.
	Confidence     int             `json:"confidence"`
	Tier           string          `json:"tier"`
	Recommendation string          `json:"recommendation"`
	Headline       string          `json:"headline,omitempty"`
	Signals        []signal.Result `json:"signals"`

	ClosingLine *float64 `json:"closing_line,omitempty"`
	ClosingOdds *int     `json:"closing_odds,omitempty"`
	CLV         *float64 `json:"clv,omitempty"`
	CLVCents    *float64 `json:"clv_cents,omitempty"`

	Result   Result     `json:"result,omitempty"`
	GradedAt *time.Time `json:"graded_at,omitempty"`
}

// Graded reports whether the pick has a final outcome.
func (p *Pick) Graded() bool {
	return p.Result != ""
}

// HasClosing reports whether a closing line has been captured.
func (p *Pick) HasClosing() bool {
	return p.ClosingLine != nil || p.ClosingOdds != nil
}
