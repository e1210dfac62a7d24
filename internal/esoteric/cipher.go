package esoteric

// Cipher maps a string to an integer by summing a per-letter value.
// All ciphers are case-insensitive (ASCII folding only, no locale rules)
// and ignore non-letter characters. An empty or letterless input sums to 0.
type Cipher func(s string) int

// letterIndex returns the 1-based alphabet position of c, or 0 for non-letters.
func letterIndex(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 1
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	}
	return 0
}

func sumLetters(s string, value func(pos int) int) int {
	total := 0
	for i := 0; i < len(s); i++ {
		if pos := letterIndex(s[i]); pos > 0 {
			total += value(pos)
		}
	}
	return total
}

// Ordinal is the simple A=1 .. Z=26 cipher.
func Ordinal(s string) int {
	return sumLetters(s, func(pos int) int { return pos })
}

// ReverseOrdinal is A=26 .. Z=1.
func ReverseOrdinal(s string) int {
	return sumLetters(s, func(pos int) int { return 27 - pos })
}

// Reduction reduces each letter's ordinal position to a single digit
// before summing (K = 11 contributes 2).
func Reduction(s string) int {
	return sumLetters(s, func(pos int) int {
		for pos > 9 {
			pos = DigitSum(pos)
		}
		return pos
	})
}

// jewishValues follows the classic English/Agrippa table: A..I count 1..9,
// K..S count 10..90, T..Z step through the hundreds with J, V, W last.
var jewishValues = [27]int{0,
	1, 2, 3, 4, 5, 6, 7, 8, 9, // A-I
	600,                               // J
	10, 20, 30, 40, 50, 60, 70, 80, 90, // K-S
	100, 200, 700, 900, 300, 400, 500, // T-Z
}

// Jewish is the Agrippa-key cipher (A=1, K=10, T=100).
func Jewish(s string) int {
	return sumLetters(s, func(pos int) int { return jewishValues[pos] })
}

// Sumerian is the ordinal position multiplied by six.
func Sumerian(s string) int {
	return sumLetters(s, func(pos int) int { return pos * 6 })
}

// Ciphers lists every named cipher table in a stable order.
var Ciphers = []struct {
	Name string
	Fn   Cipher
}{
	{"ordinal", Ordinal},
	{"reverse_ordinal", ReverseOrdinal},
	{"reduction", Reduction},
	{"jewish", Jewish},
	{"sumerian", Sumerian},
}
