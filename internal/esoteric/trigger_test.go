package esoteric

import "testing"

func TestCheckTriggerDirectHits(t *testing.T) {
	cases := []struct {
		value int
		tier  string
		boost int
	}{
		{2178, TierLegendary, 20},
		{201, TierHigh, 12},
		{33, TierHigh, 10},
		{93, TierHigh, 10},
		{322, TierHigh, 10},
	}
	for _, c := range cases {
		got := CheckTrigger(c.value)
		if !got.Triggered || got.Type != DirectHit {
			t.Errorf("CheckTrigger(%d): got %+v, want direct hit", c.value, got)
		}
		if got.Tier != c.tier || got.Boost != c.boost {
			t.Errorf("CheckTrigger(%d): tier=%s boost=%d, want %s/%d", c.value, got.Tier, got.Boost, c.tier, c.boost)
		}
	}
}

func TestCheckTriggerImmortalReverse(t *testing.T) {
	got := CheckTrigger(8712)
	if !got.Triggered || got.Type != ImmortalReverse || got.Boost != 15 {
		t.Errorf("CheckTrigger(8712) = %+v, want IMMORTAL_REVERSE boost 15", got)
	}
	// A value containing the 2178 sequence also counts.
	if got := CheckTrigger(121784); !got.Triggered || got.Type != ImmortalReverse {
		t.Errorf("CheckTrigger(121784) = %+v, want IMMORTAL_REVERSE", got)
	}
}

func TestCheckTriggerDiv33(t *testing.T) {
	got := CheckTrigger(66)
	if !got.Triggered || got.Type != Div33 || got.Tier != TierMedium {
		t.Errorf("CheckTrigger(66) = %+v, want DIV_33 medium", got)
	}
}

func TestCheckTriggerNear201(t *testing.T) {
	for _, v := range []int{196, 199, 203, 206} {
		got := CheckTrigger(v)
		if !got.Triggered || got.Type != Near201 || got.Tier != TierLow {
			t.Errorf("CheckTrigger(%d) = %+v, want NEAR_201 low", v, got)
		}
	}
}

func TestCheckTriggerTeslaAligned(t *testing.T) {
	got := CheckTrigger(12) // 12 % 9 == 3
	if !got.Triggered || got.Type != TeslaAlignedHit || got.Boost != 4 {
		t.Errorf("CheckTrigger(12) = %+v, want TESLA_ALIGNED boost 4", got)
	}
}

func TestCheckTriggerNoMatch(t *testing.T) {
	for _, v := range []int{0, 1, 100, 250} {
		got := CheckTrigger(v)
		if got.Triggered {
			t.Errorf("CheckTrigger(%d) = %+v, want no trigger", v, got)
		}
	}
}

func TestChromeResonanceNeutral(t *testing.T) {
	for _, in := range []string{"", "   ", "1234"} {
		r := ChromeResonance(in)
		if r.Score != 50 || r.Level != NeutralResonance {
			t.Errorf("ChromeResonance(%q) = %+v, want neutral", in, r)
		}
	}
}

func TestChromeResonanceValues(t *testing.T) {
	if r := ChromeResonance("A"); r.HexAverage != 65 || r.CharCount != 1 {
		t.Errorf("ChromeResonance(A) = %+v", r)
	}
	r := ChromeResonance("M")
	if r.HexAverage != 77 || r.Level != PeakResonance || r.Score < 85 {
		t.Errorf("ChromeResonance(M) = %+v, want peak at 77", r)
	}
	if r := ChromeResonance("A1B2C3"); r.CharCount != 3 {
		t.Errorf("ChromeResonance(A1B2C3) counted %d chars, want 3", r.CharCount)
	}
	lower, upper := ChromeResonance("abc"), ChromeResonance("ABC")
	if lower.HexAverage != upper.HexAverage {
		t.Error("resonance should be case-insensitive")
	}
	// ZZZZ averages 90, and 90 % 9 == 0 is Tesla-aligned.
	if r := ChromeResonance("ZZZZ"); !r.TeslaAligned {
		t.Errorf("ChromeResonance(ZZZZ) = %+v, want tesla aligned", r)
	}
}

func TestCompareResonance(t *testing.T) {
	m := CompareResonance("MMMM", "AAAA", "")
	if m.Home.Score <= m.Away.Score {
		t.Errorf("MMMM should out-resonate AAAA: %f vs %f", m.Home.Score, m.Away.Score)
	}
	if m.Favored != "HOME" {
		t.Errorf("favored = %q, want HOME", m.Favored)
	}

	withVenue := CompareResonance("Lakers", "Celtics", "Crypto.com Arena")
	if withVenue.Venue == nil || withVenue.Venue.HexAverage <= 0 {
		t.Error("venue resonance missing")
	}
	if withVenue.CombinedScore <= 0 {
		t.Error("combined score should be positive")
	}
}
