package signal

// WeightTable maps signal name to a non-negative integer weight. Weights
// need not sum to anything in particular; the scorer normalizes by the
// weights of the signals that actually applied.
type WeightTable map[string]int

// fallbackWeight is used for snapshotted signals whose name is absent
// from the active table.
const fallbackWeight = 5

// DefaultWeights is the built-in calibration.
func DefaultWeights() WeightTable {
	return WeightTable{
		// Market/statistical signals, highest impact.
		"sharp_money":   18,
		"line_value":    15,
		"key_spread":    12,
		"injury_impact": 10,
		"rest_fatigue":  8,
		"public_fade":   8,

		// Model pass-throughs.
		"ensemble":   10,
		"lstm_brain": 10,

		// Derived-numeric signals, low weight until validated.
		"numerology":       4,
		"moon_phase":       3,
		"gematria":         3,
		"chrome_resonance": 3,
		"sacred_geometry":  2,
	}
}

// Sanitize returns a copy with negative weights clamped to zero. Unknown
// names are left in place; the scorer simply never consults them.
func (w WeightTable) Sanitize() WeightTable {
	out := make(WeightTable, len(w))
	for name, weight := range w {
		if weight < 0 {
			weight = 0
		}
		out[name] = weight
	}
	return out
}

// SportModifiers scale individual signal weights per sport. Unlisted
// pairs default to 1.0.
type SportModifiers map[string]map[string]float64

// DefaultSportModifiers reflects where each signal has historically
// mattered most.
func DefaultSportModifiers() SportModifiers {
	return SportModifiers{
		"NFL": {
			"key_spread":   1.5,
			"sharp_money":  1.2,
			"rest_fatigue": 0.7,
		},
		"NBA": {
			"rest_fatigue":  1.4,
			"injury_impact": 1.3,
		},
		"MLB": {
			"sharp_money":  1.3,
			"key_spread":   0.5,
			"rest_fatigue": 0.8,
		},
		"NHL": {
			"sharp_money":  1.1,
			"rest_fatigue": 1.2,
			"key_spread":   0.6,
		},
		"NCAAB": {
			"public_fade": 1.5,
			"sharp_money": 0.9,
			"key_spread":  1.2,
		},
	}
}

func (m SportModifiers) factor(sport, signal string) float64 {
	if bySignal, ok := m[sport]; ok {
		if f, ok := bySignal[signal]; ok {
			return f
		}
	}
	return 1.0
}
