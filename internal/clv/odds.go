// Package clv tracks picks against the closing market. Closing line
// value, the difference between the line taken and the line at close,
// is the one leading indicator that survives small samples.
package clv

import (
	"errors"
	"fmt"
)

var errZeroOdds = errors.New("american odds of 0 are undefined")

// AmericanToDecimal converts American odds to decimal payout odds.
func AmericanToDecimal(odds int) (float64, error) {
	if odds == 0 {
		return 0, errZeroOdds
	}
	if odds > 0 {
		return 1 + float64(odds)/100, nil
	}
	return 1 + 100/float64(-odds), nil
}

// AmericanToImplied converts American odds to the implied win
// probability, vig included.
func AmericanToImplied(odds int) (float64, error) {
	if odds == 0 {
		return 0, errZeroOdds
	}
	if odds > 0 {
		return 100 / float64(odds+100), nil
	}
	return float64(-odds) / float64(-odds+100), nil
}

// Profit returns the profit on stake at the given American odds.
func Profit(stake float64, odds int) (float64, error) {
	if odds == 0 {
		return 0, errZeroOdds
	}
	if odds > 0 {
		return stake * float64(odds) / 100, nil
	}
	return stake * 100 / float64(-odds), nil
}

func validOdds(odds int) error {
	if odds == 0 {
		return fmt.Errorf("invalid odds: %w", errZeroOdds)
	}
	return nil
}
