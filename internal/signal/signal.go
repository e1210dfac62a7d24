package signal

import (
	"time"

	"linesight/internal/esoteric"
)

// BetType identifies the market a pick is placed on.
type BetType string

const (
	Spread    BetType = "spread"
	Total     BetType = "total"
	Moneyline BetType = "moneyline"
	Prop      BetType = "prop"
)

// Side is the side of the market being backed.
type Side string

const (
	Home  Side = "HOME"
	Away  Side = "AWAY"
	Over  Side = "OVER"
	Under Side = "UNDER"
)

// Family groups signals for the tier-alignment check.
type Family int

const (
	FamilyMarket  Family = iota // market/statistical signals
	FamilyModel                 // pre-computed model scores passed through
	FamilyDerived               // derived-numeric signals
)

func (f Family) String() string {
	switch f {
	case FamilyMarket:
		return "market"
	case FamilyModel:
		return "model"
	default:
		return "derived"
	}
}

// MoneySplit is the ticket/money percentage split for the home side.
type MoneySplit struct {
	HomeTicketPct float64
	HomeMoneyPct  float64
}

// RestInfo carries days of rest before the game for each side.
type RestInfo struct {
	HomeDays int
	AwayDays int
}

// Injury is one entry from an injury report.
type Injury struct {
	Team   string
	Player string
	Status string // OUT, DOUBTFUL, QUESTIONABLE, PROBABLE
}

// ModelScores are confidences computed upstream and passed through.
type ModelScores struct {
	Ensemble float64 // 0 means absent
	LSTM     float64 // 0 means absent
}

// GameContext is the normalized per-call input to the scorer. Optional
// blocks are nil when the upstream feed had nothing; evaluators treat nil
// as "no opinion" and score neutral.
type GameContext struct {
	Sport        string // upper-case code: NBA, NFL, MLB, NHL, NCAAB
	HomeTeam     string
	AwayTeam     string
	Venue        string
	CommenceTime time.Time

	BetType BetType
	Side    Side

	// Line and price for the contemplated bet. Line is signed from the
	// picked side's perspective (negative = laying points). HasLine
	// distinguishes a genuine pick-em zero from missing data.
	Line    float64
	HasLine bool
	Odds    int // American odds; 0 = unknown

	Splits      *MoneySplit
	Rest        *RestInfo
	Injuries    []Injury
	Predictions *ModelScores

	// Legs of a multi-leg combination; empty for straight bets.
	Legs []esoteric.Leg
}

// Result is one evaluated signal.
type Result struct {
	Name         string  `json:"name"`
	Score        float64 `json:"score"` // 0..100, 50 is neutral
	Contribution string  `json:"contribution"`
	Weight       float64 `json:"weight"` // effective weight used by the scorer
	Family       Family  `json:"family"`
}

// neutral is the defined no-opinion score returned whenever an evaluator
// is missing its required input.
const neutral = 50.0

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
