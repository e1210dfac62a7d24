package esoteric

// Vortex sync levels by number of Tesla hits.
const (
	NoVortex     = "NONE"
	SingleVortex = "SINGLE_VORTEX"
	DoubleVortex = "DOUBLE_VORTEX"
	TripleVortex = "TRIPLE_VORTEX"
)

// defaultLegOdds is assumed when a leg carries no price.
const defaultLegOdds = -110

// Leg is one leg of a multi-leg combination.
type Leg struct {
	Odds int // American odds; 0 means unknown, treated as -110
}

// VortexSync is the Tesla 3-6-9 analysis of a multi-leg combination.
// Three independent checks can each score a "hit": the leg count, the
// mod-9 residue of the combined odds product, and the mod-9 residue of
// the odds sum. Sync level and boost follow from the hit count.
type VortexSync struct {
	HasSync        bool
	Level          string
	Boost          int
	TeslaHits      int
	LegCount       int
	LegCountIsT369 bool
	OddsSum        int
	OddsSumMod9    int
	OddsProductM9  int
}

// Vortex analyzes the legs of a combination. Fewer than two legs never sync.
func Vortex(legs []Leg) VortexSync {
	v := VortexSync{Level: NoVortex, LegCount: len(legs)}
	if len(legs) < 2 {
		return v
	}

	// Track the product modulo 9 as we go so long parlays cannot overflow.
	productMod := 1
	for _, leg := range legs {
		odds := leg.Odds
		if odds == 0 {
			odds = defaultLegOdds
		}
		if odds < 0 {
			odds = -odds
		}
		v.OddsSum += odds
		productMod = (productMod * (odds % 9)) % 9
	}
	v.OddsSumMod9 = v.OddsSum % 9
	v.OddsProductM9 = productMod

	v.LegCountIsT369 = v.LegCount == 3 || v.LegCount == 6 || v.LegCount == 9
	if v.LegCountIsT369 {
		v.TeslaHits++
	}
	if TeslaAligned(v.OddsProductM9) {
		v.TeslaHits++
	}
	if TeslaAligned(v.OddsSumMod9) {
		v.TeslaHits++
	}

	switch v.TeslaHits {
	case 1:
		v.Level, v.Boost = SingleVortex, 3
	case 2:
		v.Level, v.Boost = DoubleVortex, 5
	case 3:
		v.Level, v.Boost = TripleVortex, 8
	}
	v.HasSync = v.TeslaHits > 0
	return v
}

// powerLegCounts are Fibonacci and master leg counts considered notable
// on their own, independent of vortex sync.
var powerLegCounts = map[int]bool{2: true, 3: true, 5: true, 8: true, 11: true, 13: true, 22: true}

// PowerLegCount reports whether a combination has a notable leg count.
func PowerLegCount(n int) bool {
	return powerLegCounts[n]
}
