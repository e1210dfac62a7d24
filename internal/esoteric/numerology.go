package esoteric

import "time"

// Master numbers are never reduced further.
var masterNumbers = map[int]bool{11: true, 22: true, 33: true}

// DigitSum returns the sum of the decimal digits of n (sign ignored).
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Reduce repeatedly sums decimal digits until a single digit remains,
// except that the master numbers 11, 22 and 33 are preserved.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 && !masterNumbers[n] {
		n = DigitSum(n)
	}
	return n
}

// LifePath computes the numerological life path number for a calendar date:
// the digits of year, month and day are summed and reduced with the
// master-number rule. A zero time returns 0.
func LifePath(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	y, m, d := t.Date()
	return Reduce(DigitSum(y) + DigitSum(int(m)) + DigitSum(d))
}

// PowerDay reports whether a life path number carries elevated energy
// (8 or one of the master numbers 11/22).
func PowerDay(lifePath int) bool {
	return lifePath == 8 || lifePath == 11 || lifePath == 22
}

// TeslaAligned reports whether n reduces to 3, 6 or 9 under modulo-9
// vortex reduction (a residue of 0 counts as 9).
func TeslaAligned(n int) bool {
	if n < 0 {
		n = -n
	}
	r := n % 9
	return r == 3 || r == 6 || r == 0
}
