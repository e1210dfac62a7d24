package signal

import (
	"fmt"

	"linesight/internal/esoteric"
)

// Derived-numeric evaluators. Deliberately low-weighted; they exist to
// break ties, not to drive picks.

// gematria compares ordinal cipher values of the team names and nudges
// the score when the difference lands on a Tesla residue.
func gematria(ctx *GameContext) (float64, string) {
	if ctx.HomeTeam == "" || ctx.AwayTeam == "" {
		return neutral, "No team data"
	}

	home := esoteric.Ordinal(ctx.HomeTeam)
	away := esoteric.Ordinal(ctx.AwayTeam)
	diff := home - away
	if diff < 0 {
		diff = -diff
	}

	if diff != 0 && esoteric.TeslaAligned(diff) {
		return 65, fmt.Sprintf("Gematria delta %d is Tesla-aligned (%d vs %d)", diff, home, away)
	}
	return neutral, fmt.Sprintf("Gematria: %d vs %d", home, away)
}

// chromeResonance favors the side whose name resonance sits closer to
// the optimum, then layers on the strongest edge-number trigger any
// cipher table finds for the picked name. Totals have no side to favor
// and score neutral.
func chromeResonance(ctx *GameContext) (float64, string) {
	if ctx.HomeTeam == "" || ctx.AwayTeam == "" {
		return neutral, "No team data"
	}
	m := esoteric.CompareResonance(ctx.HomeTeam, ctx.AwayTeam, ctx.Venue)

	var name string
	switch ctx.Side {
	case Home:
		name = ctx.HomeTeam
	case Away:
		name = ctx.AwayTeam
	default:
		return neutral, fmt.Sprintf("Combined resonance %.0f, no side to favor", m.CombinedScore)
	}

	score := neutral
	switch {
	case m.Favored == "HOME" && ctx.Side == Home, m.Favored == "AWAY" && ctx.Side == Away:
		score = 60
	case m.Favored != "":
		score = 40
	}

	detail := fmt.Sprintf("Resonance %.0f vs %.0f", m.Home.Score, m.Away.Score)
	if trig := bestTrigger(name); trig.Triggered {
		score += float64(trig.Boost)
		detail += "; " + trig.Detail
	}
	return clampScore(score), detail
}

// bestTrigger checks every cipher encoding of name against the edge-number
// table and keeps the strongest hit. Tesla residue only counts on the
// primary cipher: the sumerian table is six times ordinal, so mod 9 it
// would align every name.
func bestTrigger(name string) esoteric.Trigger {
	best := esoteric.CheckTrigger(esoteric.Ordinal(name))
	for _, c := range esoteric.Ciphers {
		t := esoteric.CheckTrigger(c.Fn(name))
		if t.Triggered && t.Type != esoteric.TeslaAlignedHit && t.Boost > best.Boost {
			best = t
		}
	}
	return best
}

// moonPhase reads the lunar cycle at game time. Full and new moons are
// the only phases held to matter.
func moonPhase(ctx *GameContext) (float64, string) {
	if ctx.CommenceTime.IsZero() {
		return neutral, "No game time"
	}

	phase := esoteric.Phase(ctx.CommenceTime)
	switch phase.Name {
	case "Full Moon":
		return 65, fmt.Sprintf("Full Moon (%.0f%% influence) favors unders and dogs", phase.Influence*100)
	case "New Moon":
		return 60, fmt.Sprintf("New Moon (%.0f%% influence)", phase.Influence*100)
	}
	return neutral, fmt.Sprintf("%s, no edge", phase.Name)
}

// numerology checks whether the game date is a power day.
func numerology(ctx *GameContext) (float64, string) {
	if ctx.CommenceTime.IsZero() {
		return neutral, "No game time"
	}

	lp := esoteric.LifePath(ctx.CommenceTime)
	if esoteric.PowerDay(lp) {
		return 70, fmt.Sprintf("POWER DAY: life path %d", lp)
	}
	return neutral, fmt.Sprintf("Life path %d, neutral", lp)
}

// sacredGeometry maps the vortex sync of a multi-leg combination onto
// the score scale. Straight bets score neutral.
func sacredGeometry(ctx *GameContext) (float64, string) {
	if len(ctx.Legs) < 2 {
		return neutral, "No multi-leg structure"
	}

	v := esoteric.Vortex(ctx.Legs)
	if !v.HasSync {
		return neutral, "No vortex alignment"
	}
	score := neutral + float64(v.Boost)*3
	return clampScore(score), fmt.Sprintf("%s: %d Tesla hits across %d legs", v.Level, v.TeslaHits, v.LegCount)
}
