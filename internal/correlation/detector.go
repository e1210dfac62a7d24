// Package correlation scores how concentrated a slate of active picks
// is. Correlated picks win and lose together; the detector prices that
// into a diversification score and a stake multiplier.
package correlation

import (
	"fmt"
	"sort"
	"strings"

	"linesight/internal/pick"
	"linesight/internal/signal"
)

// Warning severities.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
)

// Recommendations, by falling diversification score.
const (
	RecGood    = "GOOD"
	RecCaution = "CAUTION"
	RecWarning = "WARNING"
	RecDanger  = "DANGER"
)

// Policy holds the penalty schedule. The defaults reflect how quickly
// same-game and directional exposure compound.
type Policy struct {
	SameGamePenalty int
	SameTeamPenalty int

	DirectionalHighPenalty   int
	DirectionalMediumPenalty int
	DirectionalHighShare     float64
	DirectionalMediumShare   float64
	DirectionalMinPicks      int

	SpreadClusterPenalty int
	SpreadClusterLine    float64
	SpreadClusterShare   float64

	TotalClusterPenalty  int
	TotalClusterVariance float64

	GoodScore    int
	CautionScore int
	WarningScore int
}

func DefaultPolicy() Policy {
	return Policy{
		SameGamePenalty: 30,
		SameTeamPenalty: 20,

		DirectionalHighPenalty:   25,
		DirectionalMediumPenalty: 15,
		DirectionalHighShare:     0.8,
		DirectionalMediumShare:   0.6,
		DirectionalMinPicks:      3,

		SpreadClusterPenalty: 15,
		SpreadClusterLine:    7,
		SpreadClusterShare:   0.6,

		TotalClusterPenalty:  15,
		TotalClusterVariance: 25,

		GoodScore:    80,
		CautionScore: 60,
		WarningScore: 40,
	}
}

// Warning is one detected concentration.
type Warning struct {
	Kind     string   `json:"kind"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	PickIDs  []string `json:"pick_ids"`
	Penalty  int      `json:"penalty"`
}

// Analysis is the full correlation read on a slate.
type Analysis struct {
	Picks           int       `json:"picks"`
	Penalty         int       `json:"penalty"`
	Diversification int       `json:"diversification"` // 0..100, higher is better
	Recommendation  string    `json:"recommendation"`
	StakeMultiplier float64   `json:"stake_multiplier"`
	Warnings        []Warning `json:"warnings"`
}

// Detector applies a Policy to slates of picks. Analyze is pure: the
// same picks in any order produce the same analysis.
type Detector struct {
	policy Policy
}

func NewDetector(policy Policy) *Detector {
	return &Detector{policy: policy}
}

// Analyze scores the slate. Fewer than two picks can never correlate.
func (d *Detector) Analyze(picks []pick.Pick) Analysis {
	a := Analysis{Picks: len(picks), Diversification: 100}
	if len(picks) >= 2 {
		a.Warnings = append(a.Warnings, d.sameGameWarnings(picks)...)
		a.Warnings = append(a.Warnings, d.sameTeamWarnings(picks)...)
		a.Warnings = append(a.Warnings, d.directionalWarnings(picks)...)
		a.Warnings = append(a.Warnings, d.clusterWarnings(picks)...)
	}

	for _, w := range a.Warnings {
		a.Penalty += w.Penalty
	}
	a.Diversification = 100 - a.Penalty
	if a.Diversification < 0 {
		a.Diversification = 0
	}

	switch {
	case a.Diversification >= d.policy.GoodScore:
		a.Recommendation = RecGood
	case a.Diversification >= d.policy.CautionScore:
		a.Recommendation = RecCaution
	case a.Diversification >= d.policy.WarningScore:
		a.Recommendation = RecWarning
	default:
		a.Recommendation = RecDanger
	}
	a.StakeMultiplier = stakeMultiplier(a.Diversification)
	return a
}

// CheckNewPick reports how adding candidate to the slate would change
// the correlation picture.
func (d *Detector) CheckNewPick(existing []pick.Pick, candidate pick.Pick) (before, after Analysis) {
	before = d.Analyze(existing)
	slate := make([]pick.Pick, 0, len(existing)+1)
	slate = append(slate, existing...)
	slate = append(slate, candidate)
	after = d.Analyze(slate)
	return before, after
}

// stakeMultiplier shrinks stakes as diversification erodes.
func stakeMultiplier(diversification int) float64 {
	switch {
	case diversification < 40:
		return 0.5
	case diversification < 60:
		return 0.7
	case diversification < 80:
		return 0.85
	}
	return 1.0
}

func gameKey(p pick.Pick) string {
	return p.Sport + "|" + p.AwayTeam + "@" + p.HomeTeam
}

// sortedGroups returns map keys in stable order so warning output does
// not depend on map iteration.
func sortedGroups(groups map[string][]string) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *Detector) sameGameWarnings(picks []pick.Pick) []Warning {
	byGame := map[string][]string{}
	for _, p := range picks {
		key := gameKey(p)
		byGame[key] = append(byGame[key], p.ID)
	}

	var out []Warning
	for _, key := range sortedGroups(byGame) {
		ids := byGame[key]
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		out = append(out, Warning{
			Kind:     "SAME_GAME",
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("%d picks on the same game (%s)", len(ids), key),
			PickIDs:  ids,
			Penalty:  d.policy.SameGamePenalty,
		})
	}
	return out
}

func (d *Detector) sameTeamWarnings(picks []pick.Pick) []Warning {
	// Picks across different games whose matchups involve the same team,
	// on either side of it. A pick exposes both teams in its game: backing
	// the opponent still rides that game's outcome. Full same-game overlap
	// is priced separately and skipped here via the distinct-game check.
	byTeam := map[string][]string{}
	games := map[string]map[string]bool{}
	for _, p := range picks {
		for _, team := range []string{strings.TrimSpace(p.HomeTeam), strings.TrimSpace(p.AwayTeam)} {
			if team == "" {
				continue
			}
			byTeam[team] = append(byTeam[team], p.ID)
			if games[team] == nil {
				games[team] = map[string]bool{}
			}
			games[team][gameKey(p)] = true
		}
	}

	var out []Warning
	for _, team := range sortedGroups(byTeam) {
		ids := byTeam[team]
		if len(ids) < 2 || len(games[team]) < 2 {
			continue
		}
		sort.Strings(ids)
		out = append(out, Warning{
			Kind:     "SAME_TEAM",
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("%d picks involving %s across games", len(ids), team),
			PickIDs:  ids,
			Penalty:  d.policy.SameTeamPenalty,
		})
	}
	return out
}

func (d *Detector) directionalWarnings(picks []pick.Pick) []Warning {
	var out []Warning

	// Spread picks split into favorites (laying points) and dogs.
	var spreads []pick.Pick
	favorites := 0
	for _, p := range picks {
		if p.BetType != signal.Spread || p.Line == nil {
			continue
		}
		spreads = append(spreads, p)
		if *p.Line < 0 {
			favorites++
		}
	}
	if w, ok := d.directionalWarning(spreads, favorites, "favorites", "underdogs"); ok {
		out = append(out, w)
	}

	var totals []pick.Pick
	overs := 0
	for _, p := range picks {
		if p.BetType != signal.Total {
			continue
		}
		totals = append(totals, p)
		if p.Side == signal.Over {
			overs++
		}
	}
	if w, ok := d.directionalWarning(totals, overs, "overs", "unders"); ok {
		out = append(out, w)
	}
	return out
}

func (d *Detector) directionalWarning(group []pick.Pick, oneSide int, oneLabel, otherLabel string) (Warning, bool) {
	if len(group) < d.policy.DirectionalMinPicks {
		return Warning{}, false
	}
	share := float64(oneSide) / float64(len(group))
	label := oneLabel
	if share < 0.5 {
		share = 1 - share
		label = otherLabel
	}

	var severity string
	var penalty int
	switch {
	case share >= d.policy.DirectionalHighShare:
		severity, penalty = SeverityHigh, d.policy.DirectionalHighPenalty
	case share >= d.policy.DirectionalMediumShare:
		severity, penalty = SeverityMedium, d.policy.DirectionalMediumPenalty
	default:
		return Warning{}, false
	}

	ids := make([]string, 0, len(group))
	for _, p := range group {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return Warning{
		Kind:     "DIRECTIONAL",
		Severity: severity,
		Message:  fmt.Sprintf("%.0f%% of %d picks are %s", share*100, len(group), label),
		PickIDs:  ids,
		Penalty:  penalty,
	}, true
}

func (d *Detector) clusterWarnings(picks []pick.Pick) []Warning {
	var out []Warning

	var spreadIDs []string
	big := 0
	for _, p := range picks {
		if p.BetType != signal.Spread || p.Line == nil {
			continue
		}
		spreadIDs = append(spreadIDs, p.ID)
		if abs(*p.Line) >= d.policy.SpreadClusterLine {
			big++
		}
	}
	if len(spreadIDs) >= 3 && float64(big)/float64(len(spreadIDs)) >= d.policy.SpreadClusterShare {
		sort.Strings(spreadIDs)
		out = append(out, Warning{
			Kind:     "SPREAD_CLUSTER",
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("%d of %d spread picks lay %.0f+ points", big, len(spreadIDs), d.policy.SpreadClusterLine),
			PickIDs:  spreadIDs,
			Penalty:  d.policy.SpreadClusterPenalty,
		})
	}

	var totalIDs []string
	var lines []float64
	for _, p := range picks {
		if p.BetType != signal.Total || p.Line == nil {
			continue
		}
		totalIDs = append(totalIDs, p.ID)
		lines = append(lines, *p.Line)
	}
	if len(lines) >= 3 && variance(lines) < d.policy.TotalClusterVariance {
		sort.Strings(totalIDs)
		out = append(out, Warning{
			Kind:     "TOTAL_CLUSTER",
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("%d totals within a narrow band", len(totalIDs)),
			PickIDs:  totalIDs,
			Penalty:  d.policy.TotalClusterPenalty,
		})
	}
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func variance(xs []float64) float64 {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	v := 0.0
	for _, x := range xs {
		v += (x - mean) * (x - mean)
	}
	return v / float64(len(xs))
}
