package esoteric

import "testing"

func TestOrdinal(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"A", 1},
		{"Z", 26},
		{"ABC", 6},
		{"abc", 6},
		{"A1B2C3", 6},
		{"", 0},
		{"   ", 0},
		{"123!@#", 0},
	}
	for _, c := range cases {
		if got := Ordinal(c.in); got != c.want {
			t.Errorf("Ordinal(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReverseOrdinal(t *testing.T) {
	if got := ReverseOrdinal("A"); got != 26 {
		t.Errorf("ReverseOrdinal(A) = %d, want 26", got)
	}
	if got := ReverseOrdinal("Z"); got != 1 {
		t.Errorf("ReverseOrdinal(Z) = %d, want 1", got)
	}
}

func TestReduction(t *testing.T) {
	// K is position 11, which reduces to 2.
	if got := Reduction("K"); got != 2 {
		t.Errorf("Reduction(K) = %d, want 2", got)
	}
	if got := Reduction("A"); got != 1 {
		t.Errorf("Reduction(A) = %d, want 1", got)
	}
}

func TestJewish(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"A", 1},
		{"K", 10},
		{"T", 100},
		{"J", 600},
		{"", 0},
	}
	for _, c := range cases {
		if got := Jewish(c.in); got != c.want {
			t.Errorf("Jewish(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSumerian(t *testing.T) {
	if got := Sumerian("A"); got != 6 {
		t.Errorf("Sumerian(A) = %d, want 6", got)
	}
	if got := Sumerian("B"); got != 12 {
		t.Errorf("Sumerian(B) = %d, want 12", got)
	}
}

func TestCiphersCaseInsensitive(t *testing.T) {
	for _, c := range Ciphers {
		if lower, upper := c.Fn("lakers"), c.Fn("LAKERS"); lower != upper {
			t.Errorf("%s: lower %d != upper %d", c.Name, lower, upper)
		}
	}
}
