package esoteric

import "math"

// Resonance levels, strongest first.
const (
	PeakResonance     = "PEAK_RESONANCE"
	HighResonance     = "HIGH_RESONANCE"
	ModerateResonance = "MODERATE_RESONANCE"
	MildResonance     = "MILD_RESONANCE"
	LowResonance      = "LOW_RESONANCE"
	NeutralResonance  = "NEUTRAL"
)

// optimalHex is the ASCII value of 'M', the midpoint of the uppercase
// alphabet and the resonance optimum.
const optimalHex = 77

// Resonance is the "chrome resonance" reading for a name: the average
// ASCII value of its letters measured against the optimum.
type Resonance struct {
	HexAverage   int
	CharCount    int
	Score        float64 // 0..100, 50 is neutral
	Level        string
	TeslaAligned bool
}

// ChromeResonance computes the resonance of a name. Non-letter characters
// are ignored and case is folded; an input with no letters is neutral.
func ChromeResonance(s string) Resonance {
	sum, count := 0, 0
	for i := 0; i < len(s); i++ {
		if pos := letterIndex(s[i]); pos > 0 {
			sum += 'A' - 1 + pos // uppercase ASCII value
			count++
		}
	}
	if count == 0 {
		return Resonance{Score: 50, Level: NeutralResonance}
	}

	avg := int(math.Round(float64(sum) / float64(count)))
	diff := avg - optimalHex
	if diff < 0 {
		diff = -diff
	}

	score := 95 - float64(diff)*4
	if score < 30 {
		score = 30
	}

	var level string
	switch {
	case diff <= 1:
		level = PeakResonance
	case diff <= 3:
		level = HighResonance
	case diff <= 6:
		level = ModerateResonance
	case diff <= 10:
		level = MildResonance
	default:
		level = LowResonance
	}

	return Resonance{
		HexAverage:   avg,
		CharCount:    count,
		Score:        score,
		Level:        level,
		TeslaAligned: TeslaAligned(avg),
	}
}

// Matchup compares the resonance of two names, optionally with a venue.
type Matchup struct {
	Home, Away    Resonance
	Venue         *Resonance
	CombinedScore float64
	Favored       string // "HOME", "AWAY", or "" when too close to call
}

// CompareResonance scores a home/away matchup. A side is favored only when
// its resonance score leads by 10 or more points.
func CompareResonance(home, away, venue string) Matchup {
	m := Matchup{
		Home: ChromeResonance(home),
		Away: ChromeResonance(away),
	}
	m.CombinedScore = (m.Home.Score + m.Away.Score) / 2

	if venue != "" {
		v := ChromeResonance(venue)
		m.Venue = &v
	}

	switch {
	case m.Home.Score >= m.Away.Score+10:
		m.Favored = "HOME"
	case m.Away.Score >= m.Home.Score+10:
		m.Favored = "AWAY"
	}
	return m
}
