// Package kelly sizes stakes with fractional Kelly. Money math runs on
// decimals; float drift compounds in a bankroll ledger.
package kelly

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config controls how aggressively the Kelly criterion is applied.
type Config struct {
	// Fraction of full Kelly to bet. Full Kelly is maximally volatile;
	// quarter Kelly is the usual operating point.
	Fraction float64

	// MaxStakePct caps any single stake as a share of bankroll.
	MaxStakePct float64

	// MinEdge is the minimum edge before any stake is placed.
	MinEdge float64
}

func DefaultConfig() Config {
	return Config{
		Fraction:    0.25,
		MaxStakePct: 0.05,
		MinEdge:     0.01,
	}
}

// Sizer computes stakes from bankroll, estimated win probability and the
// offered price.
type Sizer struct {
	cfg Config
}

func NewSizer(cfg Config) *Sizer {
	if cfg.Fraction <= 0 {
		cfg.Fraction = DefaultConfig().Fraction
	}
	if cfg.MaxStakePct <= 0 {
		cfg.MaxStakePct = DefaultConfig().MaxStakePct
	}
	return &Sizer{cfg: cfg}
}

// Size returns the stake for a bet. multiplier scales the stake down for
// correlated slates (1.0 = no reduction). A zero stake means no bet.
func (s *Sizer) Size(bankroll, winProb float64, odds int, multiplier float64) (decimal.Decimal, error) {
	if bankroll <= 0 {
		return decimal.Zero, fmt.Errorf("bankroll must be positive, got %f", bankroll)
	}
	if winProb <= 0 || winProb >= 1 {
		return decimal.Zero, fmt.Errorf("win probability must be in (0, 1), got %f", winProb)
	}
	if odds == 0 {
		return decimal.Zero, fmt.Errorf("american odds of 0 are undefined")
	}
	if multiplier < 0 {
		multiplier = 0
	}
	if multiplier > 1 {
		multiplier = 1
	}

	// b is the net payout per unit staked.
	var b decimal.Decimal
	if odds > 0 {
		b = decimal.NewFromInt(int64(odds)).Div(decimal.NewFromInt(100))
	} else {
		b = decimal.NewFromInt(100).Div(decimal.NewFromInt(int64(-odds)))
	}

	p := decimal.NewFromFloat(winProb)
	q := decimal.NewFromInt(1).Sub(p)

	// Full Kelly: f = (b*p - q) / b.
	full := b.Mul(p).Sub(q).Div(b)
	if full.LessThanOrEqual(decimal.NewFromFloat(s.cfg.MinEdge)) {
		return decimal.Zero, nil
	}

	f := full.Mul(decimal.NewFromFloat(s.cfg.Fraction))
	maxFraction := decimal.NewFromFloat(s.cfg.MaxStakePct)
	if f.GreaterThan(maxFraction) {
		f = maxFraction
	}

	stake := decimal.NewFromFloat(bankroll).
		Mul(f).
		Mul(decimal.NewFromFloat(multiplier))
	return stake.Round(2), nil
}

// ProbFromConfidence maps a 0-100 scorer confidence to a win probability
// estimate. The mapping is deliberately flat: a point of confidence is
// worth 0.4% of win probability around the 50% anchor.
func ProbFromConfidence(confidence int) float64 {
	p := 0.5 + float64(confidence-50)*0.004
	if p < 0.05 {
		p = 0.05
	}
	if p > 0.95 {
		p = 0.95
	}
	return p
}
