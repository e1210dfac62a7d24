package clv

import (
	"fmt"

	"linesight/internal/pick"
	"linesight/internal/signal"
)

// Cents-per-unit scaling. Half a point of spread or total is worth
// roughly three cents of price; a point of moneyline implied
// probability roughly two.
const (
	pointCents = 6
	probCents  = 2
)

// SpreadCLV is the value captured on a point spread. Lines are signed
// from the picked side's perspective, so taking -3 and watching the
// market close -5 is +2 points of value.
func SpreadCLV(entry, closing float64) float64 {
	return entry - closing
}

// TotalCLV is the value captured on a total. An over gains when the
// number rises after entry, an under gains when it falls.
func TotalCLV(side signal.Side, entry, closing float64) float64 {
	if side == signal.Over {
		return closing - entry
	}
	return entry - closing
}

// MoneylineCLV is the implied-probability gain between entry and close,
// in percentage points.
func MoneylineCLV(entryOdds, closingOdds int) (float64, error) {
	entry, err := AmericanToImplied(entryOdds)
	if err != nil {
		return 0, fmt.Errorf("entry odds: %w", err)
	}
	closing, err := AmericanToImplied(closingOdds)
	if err != nil {
		return 0, fmt.Errorf("closing odds: %w", err)
	}
	return (closing - entry) * 100, nil
}

// Compute fills in the pick's CLV fields from its entry and closing
// data. Picks without the necessary closing data are left untouched.
func Compute(p *pick.Pick) error {
	switch p.BetType {
	case signal.Spread:
		if p.Line == nil || p.ClosingLine == nil {
			return nil
		}
		v := SpreadCLV(*p.Line, *p.ClosingLine)
		cents := v * pointCents
		p.CLV, p.CLVCents = &v, &cents

	case signal.Total:
		if p.Line == nil || p.ClosingLine == nil {
			return nil
		}
		v := TotalCLV(p.Side, *p.Line, *p.ClosingLine)
		cents := v * pointCents
		p.CLV, p.CLVCents = &v, &cents

	case signal.Moneyline:
		if p.ClosingOdds == nil {
			return nil
		}
		v, err := MoneylineCLV(p.Odds, *p.ClosingOdds)
		if err != nil {
			return fmt.Errorf("moneyline clv for %s: %w", p.ID, err)
		}
		cents := v * probCents
		p.CLV, p.CLVCents = &v, &cents
	}
	return nil
}
