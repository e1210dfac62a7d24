package signal

import (
	"fmt"
	"math"
)

// Market/statistical evaluators. Each is a pure function of the context;
// missing input always yields the neutral score, and every threshold
// ladder is monotonic in its driving quantity.

// sharpMoney compares the money% against the ticket% on the home side. A
// wide divergence means the dollars disagree with the tickets, the classic
// professional-action footprint.
func sharpMoney(ctx *GameContext) (float64, string) {
	if ctx.Splits == nil {
		return neutral, "No sharp data available"
	}

	div := math.Abs(ctx.Splits.HomeMoneyPct - ctx.Splits.HomeTicketPct)
	sharpSide := "HOME"
	if ctx.Splits.HomeMoneyPct < ctx.Splits.HomeTicketPct {
		sharpSide = "AWAY"
	}

	switch {
	case div >= 20:
		score := 85 + math.Min(div-20, 15)
		return score, fmt.Sprintf("STRONG SHARP: %.0f%% ticket/money divergence on %s", div, sharpSide)
	case div >= 15:
		return 70 + (div-15)*3, fmt.Sprintf("Sharp detected: %.0f%% money/ticket split", div)
	case div >= 10:
		return 55 + (div-10)*3, fmt.Sprintf("Mild sharp lean: %.0f%% divergence", div)
	}
	return neutral, "No significant sharp action"
}

// lineValue scores the price on the recommended side against the standard
// -110 market. Reduced juice scores high, extra juice scores low.
func lineValue(ctx *GameContext) (float64, string) {
	if ctx.Odds == 0 {
		return neutral, "No odds data"
	}

	odds := ctx.Odds
	switch {
	case odds >= -102:
		return 95, fmt.Sprintf("ELITE odds: %+d (reduced juice)", odds)
	case odds >= -105:
		return 85, fmt.Sprintf("Great odds: %+d", odds)
	case odds >= -108:
		return 70, fmt.Sprintf("Good odds: %+d", odds)
	case odds >= -110:
		return 55, fmt.Sprintf("Standard odds: %+d", odds)
	}
	return 40, fmt.Sprintf("Poor odds: %+d (paying extra juice)", odds)
}

// keySpread rewards spreads sitting on historically frequent final margins.
// Key numbers dominate NFL; basketball gets a coarser tight/blowout read.
func keySpread(ctx *GameContext) (float64, string) {
	if !ctx.HasLine {
		return neutral, "No spread data"
	}
	spread := math.Abs(ctx.Line)

	if ctx.Sport == "NFL" {
		switch spread {
		case 3:
			return 95, "KEY NUMBER: 3 (most common margin)"
		case 7:
			return 90, "KEY NUMBER: 7 (TD margin)"
		case 6:
			return 75, "Near key: 6 (TD-1)"
		case 10:
			return 70, "KEY NUMBER: 10 (TD+FG)"
		case 14:
			return 65, "KEY NUMBER: 14 (2 TDs)"
		}
	}

	if ctx.Sport == "NBA" || ctx.Sport == "NCAAB" {
		if spread <= 3 {
			return 80, fmt.Sprintf("Tight spread: %.1f (coin flip territory)", spread)
		}
		if spread >= 10 {
			return 70, fmt.Sprintf("Large spread: %.1f (blowout risk)", spread)
		}
	}

	return 55, fmt.Sprintf("Spread: %.1f", spread)
}

// injuryImpact reads the usage vacuum left by players ruled out.
func injuryImpact(ctx *GameContext) (float64, string) {
	if len(ctx.Injuries) == 0 {
		return neutral, "No injury data"
	}

	var gameInjuries []Injury
	for _, inj := range ctx.Injuries {
		if inj.Team == ctx.HomeTeam || inj.Team == ctx.AwayTeam {
			gameInjuries = append(gameInjuries, inj)
		}
	}
	if len(gameInjuries) == 0 {
		return 60, "No significant injuries"
	}

	var out []Injury
	for _, inj := range gameInjuries {
		if inj.Status == "OUT" || inj.Status == "DOUBTFUL" {
			out = append(out, inj)
		}
	}
	switch {
	case len(out) >= 2:
		return 80, fmt.Sprintf("Multiple OUT: %d players", len(out))
	case len(out) == 1:
		return 65, fmt.Sprintf("Key player OUT: %s", out[0].Player)
	}
	return 55, fmt.Sprintf("%d players questionable", len(gameInjuries))
}

// restFatigue scores the rest differential between the sides.
func restFatigue(ctx *GameContext) (float64, string) {
	if ctx.Rest == nil {
		return neutral, "No rest differential data"
	}

	diff := ctx.Rest.HomeDays - ctx.Rest.AwayDays
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 3:
		side := "HOME"
		if diff < 0 {
			side = "AWAY"
		}
		return 80, fmt.Sprintf("REST EDGE: %s +%d days rest", side, abs)
	case abs >= 2:
		return 65, fmt.Sprintf("Rest advantage: %d days", abs)
	}
	return neutral, "No rest differential data"
}

// publicFade flags games where the public is heavily on one side.
func publicFade(ctx *GameContext) (float64, string) {
	if ctx.Splits == nil {
		return neutral, "No splits data"
	}

	publicPct := math.Max(ctx.Splits.HomeTicketPct, 100-ctx.Splits.HomeTicketPct)
	switch {
	case publicPct >= 80:
		return 85, fmt.Sprintf("FADE ALERT: %.0f%% public on one side", publicPct)
	case publicPct >= 70:
		return 70, fmt.Sprintf("Public lean: %.0f%% - consider fade", publicPct)
	}
	return neutral, "No strong public lean"
}
