package esoteric

import (
	"testing"
	"time"
)

func TestReduce(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{5, 5},
		{10, 1},
		{29, 11}, // 2+9=11, master number preserved
		{11, 11},
		{22, 22},
		{33, 33},
		{44, 8},
		{-17, 8},
	}
	for _, c := range cases {
		if got := Reduce(c.in); got != c.want {
			t.Errorf("Reduce(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReducePreservesMasterIntermediate(t *testing.T) {
	// 38 -> 3+8 = 11 and must stop there.
	if got := Reduce(38); got != 11 {
		t.Errorf("Reduce(38) = %d, want 11", got)
	}
}

func TestLifePath(t *testing.T) {
	// 2024-01-11: digits 2+0+2+4 + 1 + 1+1 = 11, a master number.
	d := time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)
	if got := LifePath(d); got != 11 {
		t.Errorf("LifePath(2024-01-11) = %d, want 11", got)
	}

	// 2026-03-14: 2+0+2+6 + 3 + 1+4 = 18 -> 9.
	d = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	if got := LifePath(d); got != 9 {
		t.Errorf("LifePath(2026-03-14) = %d, want 9", got)
	}

	if got := LifePath(time.Time{}); got != 0 {
		t.Errorf("LifePath(zero) = %d, want 0", got)
	}
}

func TestLifePathDeterministic(t *testing.T) {
	d := time.Date(2025, time.November, 2, 19, 30, 0, 0, time.UTC)
	if LifePath(d) != LifePath(d) {
		t.Error("LifePath not deterministic")
	}
}

func TestTeslaAligned(t *testing.T) {
	aligned := []int{3, 6, 9, 12, 18, 90, 330}
	for _, n := range aligned {
		if !TeslaAligned(n) {
			t.Errorf("TeslaAligned(%d) = false, want true", n)
		}
	}
	notAligned := []int{1, 2, 4, 5, 7, 8, 100}
	for _, n := range notAligned {
		if TeslaAligned(n) {
			t.Errorf("TeslaAligned(%d) = true, want false", n)
		}
	}
}
