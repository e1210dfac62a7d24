package feed

import (
	"fmt"
	"strings"
	"time"

	"linesight/internal/esoteric"
	"linesight/internal/signal"
)

// normalize converts a wire game into scorer input. Games missing the
// identity fields are rejected; everything optional degrades to nil.
func normalize(raw rawGame) (*signal.GameContext, error) {
	home := firstNonEmpty(raw.HomeTeam, raw.HomeTeamAlt)
	away := firstNonEmpty(raw.AwayTeam, raw.AwayTeamAlt)
	if home == "" || away == "" {
		return nil, fmt.Errorf("game missing team names")
	}

	sport := strings.ToUpper(strings.TrimSpace(firstNonEmpty(raw.Sport, raw.League)))
	if sport == "" {
		return nil, fmt.Errorf("game %s @ %s missing sport", away, home)
	}

	ctx := &signal.GameContext{
		Sport:    sport,
		HomeTeam: home,
		AwayTeam: away,
		Venue:    raw.Venue,
		BetType:  signal.BetType(strings.ToLower(firstNonEmpty(raw.BetType, raw.BetTypeAlt))),
		Side:     signal.Side(strings.ToUpper(firstNonEmpty(raw.Side, raw.SideAlt))),
	}
	if ctx.BetType == "" {
		ctx.BetType = signal.Spread
	}

	if ts := firstNonEmpty(raw.CommenceTime, raw.CommenceTimeAlt); ts != "" {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("game %s @ %s: bad commence time %q: %w", away, home, ts, err)
		}
		ctx.CommenceTime = t.UTC()
	}

	if line := coalesceFloat(raw.Line, raw.Spread); line != nil {
		ctx.Line = *line
		ctx.HasLine = true
	}
	ctx.Odds = raw.Odds
	if ctx.Odds == 0 {
		ctx.Odds = raw.Price
	}

	if raw.Splits != nil {
		ctx.Splits = &signal.MoneySplit{
			HomeTicketPct: coalesceValue(raw.Splits.HomeTicketPct, raw.Splits.HomeTicketPctAlt),
			HomeMoneyPct:  coalesceValue(raw.Splits.HomeMoneyPct, raw.Splits.HomeMoneyPctAlt),
		}
	}
	if raw.Rest != nil {
		ctx.Rest = &signal.RestInfo{HomeDays: raw.Rest.HomeDays, AwayDays: raw.Rest.AwayDays}
	}
	for _, inj := range raw.Injuries {
		ctx.Injuries = append(ctx.Injuries, signal.Injury{
			Team:   inj.Team,
			Player: inj.Player,
			Status: strings.ToUpper(inj.Status),
		})
	}
	if raw.Predictions != nil {
		ctx.Predictions = &signal.ModelScores{
			Ensemble: raw.Predictions.Ensemble,
			LSTM:     raw.Predictions.LSTM,
		}
	}
	for _, leg := range raw.Legs {
		ctx.Legs = append(ctx.Legs, esoteric.Leg{Odds: leg.Odds})
	}
	return ctx, nil
}

func coalesceFloat(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func coalesceValue(primary float64, alt *float64) float64 {
	if primary != 0 {
		return primary
	}
	if alt != nil {
		return *alt
	}
	return 0
}
