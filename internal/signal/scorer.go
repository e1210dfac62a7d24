package signal

import (
	"math"
	"sort"
)

// Tier names, strongest first.
const (
	TierGolden   = "GOLDEN_CONVERGENCE"
	TierSuper    = "SUPER_SIGNAL"
	TierHarmonic = "HARMONIC_ALIGNMENT"
	TierPartial  = "PARTIAL_ALIGNMENT"
)

// Recommendation labels.
const (
	RecSmash  = "SMASH"
	RecStrong = "STRONG"
	RecPlay   = "PLAY"
	RecLean   = "LEAN"
	RecPass   = "PASS"
)

// Thresholds are the confidence cutoffs for tiers and recommendations,
// plus the per-family average required for the alignment override.
type Thresholds struct {
	Golden   float64
	Super    float64
	Harmonic float64

	Smash  float64
	Strong float64
	Play   float64
	Lean   float64

	AlignMin float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Golden:   80,
		Super:    70,
		Harmonic: 60,
		Smash:    80,
		Strong:   70,
		Play:     60,
		Lean:     55,
		AlignMin: 60,
	}
}

// evaluator is one registered signal. A nil appliesTo means the signal
// runs for every bet type.
type evaluator struct {
	name      string
	family    Family
	appliesTo func(BetType) bool
	eval      func(*GameContext) (float64, string)
}

func spreadOnly(bt BetType) bool { return bt == Spread }
func spreadOrTotal(bt BetType) bool { return bt == Spread || bt == Total }

// registry lists every signal in registration order. The order is the
// final tie-break when ranking top signals.
var registry = []evaluator{
	{"sharp_money", FamilyMarket, nil, sharpMoney},
	{"line_value", FamilyMarket, spreadOrTotal, lineValue},
	{"key_spread", FamilyMarket, spreadOnly, keySpread},
	{"injury_impact", FamilyMarket, nil, injuryImpact},
	{"rest_fatigue", FamilyMarket, nil, restFatigue},
	{"public_fade", FamilyMarket, nil, publicFade},
	{"ensemble", FamilyModel, nil, ensemble},
	{"lstm_brain", FamilyModel, nil, lstmBrain},
	{"numerology", FamilyDerived, nil, numerology},
	{"moon_phase", FamilyDerived, nil, moonPhase},
	{"gematria", FamilyDerived, nil, gematria},
	{"chrome_resonance", FamilyDerived, nil, chromeResonance},
	{"sacred_geometry", FamilyDerived, nil, sacredGeometry},
}

// familyOf resolves a signal name to its family, defaulting to derived
// for names no longer in the registry.
func familyOf(name string) Family {
	for _, e := range registry {
		if e.name == name {
			return e.family
		}
	}
	return FamilyDerived
}

// Scoring is the full output of one scoring pass.
type Scoring struct {
	Confidence     int                `json:"confidence"`
	Tier           string             `json:"tier"`
	Recommendation string             `json:"recommendation"`
	Headline       string             `json:"headline"`
	Signals        []Result           `json:"signals"`
	TopSignals     []Result           `json:"top_signals"`
	Breakdown      map[string]float64 `json:"breakdown"` // family name -> average score
}

// Scorer evaluates every applicable signal against a game context and
// folds the results into a confidence, tier and recommendation. A Scorer
// is immutable after construction and safe for concurrent use.
type Scorer struct {
	weights    WeightTable
	modifiers  SportModifiers
	thresholds Thresholds
}

func NewScorer(weights WeightTable, modifiers SportModifiers, thresholds Thresholds) *Scorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	if modifiers == nil {
		modifiers = DefaultSportModifiers()
	}
	return &Scorer{
		weights:    weights.Sanitize(),
		modifiers:  modifiers,
		thresholds: thresholds,
	}
}

// Default returns a scorer with the built-in calibration.
func Default() *Scorer {
	return NewScorer(DefaultWeights(), DefaultSportModifiers(), DefaultThresholds())
}

// WithWeights returns a copy of the scorer using an alternate weight
// table. Sport modifiers and thresholds carry over.
func (s *Scorer) WithWeights(weights WeightTable) *Scorer {
	return NewScorer(weights, s.modifiers, s.thresholds)
}

// Score evaluates ctx. The same context always produces the same result.
func (s *Scorer) Score(ctx *GameContext) Scoring {
	results := make([]Result, 0, len(registry))
	for _, e := range registry {
		if e.appliesTo != nil && !e.appliesTo(ctx.BetType) {
			continue
		}
		score, contribution := e.eval(ctx)
		weight, ok := s.weights[e.name]
		if !ok {
			weight = fallbackWeight
		}
		results = append(results, Result{
			Name:         e.name,
			Score:        clampScore(score),
			Contribution: contribution,
			Weight:       float64(weight) * s.modifiers.factor(ctx.Sport, e.name),
			Family:       e.family,
		})
	}
	return s.fold(results)
}

// ScoreFromSignals re-folds a previously evaluated signal snapshot,
// typically with an alternate weight table. Snapshot scores are trusted
// as-is; only the weighting is redone. Signal names absent from the
// table get the fallback weight.
func ScoreFromSignals(snapshot []Result, weights WeightTable) Scoring {
	weights = weights.Sanitize()
	results := make([]Result, 0, len(snapshot))
	for _, r := range snapshot {
		weight, ok := weights[r.Name]
		if !ok {
			weight = fallbackWeight
		}
		results = append(results, Result{
			Name:         r.Name,
			Score:        clampScore(r.Score),
			Contribution: r.Contribution,
			Weight:       float64(weight),
			Family:       familyOf(r.Name),
		})
	}
	var s Scorer
	s.thresholds = DefaultThresholds()
	return s.fold(results)
}

// fold turns evaluated signals into the final scoring.
func (s *Scorer) fold(results []Result) Scoring {
	var weightedSum, weightTotal float64
	for _, r := range results {
		weightedSum += r.Score * r.Weight
		weightTotal += r.Weight
	}
	confidence := 50
	if weightTotal > 0 {
		confidence = int(math.Round(weightedSum / weightTotal))
	}

	breakdown := familyAverages(results)
	tier := s.tier(confidence, breakdown)
	rec := s.recommendation(confidence)

	top := topSignals(results, 5)

	return Scoring{
		Confidence:     confidence,
		Tier:           tier,
		Recommendation: rec,
		Headline:       headline(tier, confidence, top),
		Signals:        results,
		TopSignals:     top,
		Breakdown:      breakdown,
	}
}

// familyAverages computes the mean raw score per signal family over the
// signals that actually ran.
func familyAverages(results []Result) map[string]float64 {
	sums := map[Family]float64{}
	counts := map[Family]int{}
	for _, r := range results {
		sums[r.Family] += r.Score
		counts[r.Family]++
	}
	out := make(map[string]float64, 3)
	for _, f := range []Family{FamilyMarket, FamilyModel, FamilyDerived} {
		if counts[f] > 0 {
			out[f.String()] = sums[f] / float64(counts[f])
		}
	}
	return out
}

// tier combines the confidence ladder with the cross-family alignment
// override: all three families averaging above the bar is golden
// convergence regardless of confidence, two of three floors the tier
// at super signal.
func (s *Scorer) tier(confidence int, breakdown map[string]float64) string {
	aligned := 0
	for _, f := range []Family{FamilyMarket, FamilyModel, FamilyDerived} {
		if avg, ok := breakdown[f.String()]; ok && avg >= s.thresholds.AlignMin {
			aligned++
		}
	}

	var base string
	c := float64(confidence)
	switch {
	case c >= s.thresholds.Golden:
		base = TierGolden
	case c >= s.thresholds.Super:
		base = TierSuper
	case c >= s.thresholds.Harmonic:
		base = TierHarmonic
	default:
		base = TierPartial
	}

	switch aligned {
	case 3:
		return TierGolden
	case 2:
		if base == TierHarmonic || base == TierPartial {
			return TierSuper
		}
	}
	return base
}

func (s *Scorer) recommendation(confidence int) string {
	c := float64(confidence)
	switch {
	case c >= s.thresholds.Smash:
		return RecSmash
	case c >= s.thresholds.Strong:
		return RecStrong
	case c >= s.thresholds.Play:
		return RecPlay
	case c >= s.thresholds.Lean:
		return RecLean
	}
	return RecPass
}

// topSignals ranks by score descending, then weight descending, then
// registration order, and keeps the first n.
func topSignals(results []Result, n int) []Result {
	ranked := make([]Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Weight > ranked[j].Weight
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
