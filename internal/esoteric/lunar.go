package esoteric

import (
	"math"
	"time"
)

// Lunar cycle constants: a fixed reference new moon and the mean synodic
// month. Purely arithmetic, no ephemeris lookup.
var referenceNewMoon = time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)

const synodicMonthDays = 29.53

// MoonPhase describes where a date falls in the 8-phase lunar cycle.
type MoonPhase struct {
	Name      string
	Influence float64 // 0..1, how strongly the phase is held to act
	AgeDays   float64 // days since the last new moon
	CyclePct  float64 // 0..100 position within the cycle
}

// Phase returns the lunar phase for t. A zero time returns the zero value.
func Phase(t time.Time) MoonPhase {
	if t.IsZero() {
		return MoonPhase{}
	}

	days := t.Sub(referenceNewMoon).Hours() / 24
	age := math.Mod(days, synodicMonthDays)
	if age < 0 {
		age += synodicMonthDays
	}
	pct := age / synodicMonthDays

	var name string
	var influence float64
	switch {
	case pct < 0.125:
		name, influence = "New Moon", 0.8
	case pct < 0.25:
		name, influence = "Waxing Crescent", 0.6
	case pct < 0.375:
		name, influence = "First Quarter", 0.5
	case pct < 0.5:
		name, influence = "Waxing Gibbous", 0.4
	case pct < 0.625:
		name, influence = "Full Moon", 0.9
	case pct < 0.75:
		name, influence = "Waning Gibbous", 0.6
	case pct < 0.875:
		name, influence = "Last Quarter", 0.5
	default:
		name, influence = "Waning Crescent", 0.7
	}

	return MoonPhase{
		Name:      name,
		Influence: influence,
		AgeDays:   age,
		CyclePct:  pct * 100,
	}
}
