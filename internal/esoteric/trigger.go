package esoteric

import (
	"fmt"
	"strings"
)

// Trigger match types, checked in priority order.
const (
	DirectHit       = "DIRECT_HIT"
	ImmortalReverse = "IMMORTAL_REVERSE"
	Div33           = "DIV_33"
	Near201         = "NEAR_201"
	TeslaAlignedHit = "TESLA_ALIGNED"
	NoTrigger       = "NONE"
)

// Trigger tiers.
const (
	TierLegendary = "LEGENDARY"
	TierHigh      = "HIGH"
	TierMedium    = "MEDIUM"
	TierLow       = "LOW"
)

type triggerDef struct {
	name  string
	boost int
	tier  string
}

// The edge-number table. 2178 is the only four-digit number whose product
// with 4 is its own reversal (8712) and whose product with that reversal
// is 66^4; the rest are traditional gematria triggers.
var triggerNumbers = map[int]triggerDef{
	2178: {"THE IMMORTAL", 20, TierLegendary},
	201:  {"THE ORDER", 12, TierHigh},
	33:   {"THE MASTER", 10, TierHigh},
	93:   {"THE WILL", 10, TierHigh},
	322:  {"THE SOCIETY", 10, TierHigh},
}

// Trigger is the result of checking a numeric value against the edge numbers.
type Trigger struct {
	Triggered bool
	Type      string
	Tier      string
	Boost     int
	Name      string
	Detail    string
}

// CheckTrigger tests a value against the edge-number table. Checks run in
// priority order and the first match wins: direct hit, the 8712 reversal,
// divisibility by 33, proximity to 201, then Tesla mod-9 alignment.
func CheckTrigger(value int) Trigger {
	if value < 0 {
		value = -value
	}

	if def, ok := triggerNumbers[value]; ok {
		return Trigger{
			Triggered: true,
			Type:      DirectHit,
			Tier:      def.tier,
			Boost:     def.boost,
			Name:      def.name,
			Detail:    fmt.Sprintf("direct match: %s (%d)", def.name, value),
		}
	}

	if value == 8712 || strings.Contains(fmt.Sprint(value), "2178") {
		return Trigger{
			Triggered: true,
			Type:      ImmortalReverse,
			Tier:      TierLegendary,
			Boost:     15,
			Name:      "THE IMMORTAL (reversal)",
			Detail:    fmt.Sprintf("%d carries the 2178/8712 signature", value),
		}
	}

	if value != 0 && value%33 == 0 {
		return Trigger{
			Triggered: true,
			Type:      Div33,
			Tier:      TierMedium,
			Boost:     5,
			Name:      "THE MASTER (divisible)",
			Detail:    fmt.Sprintf("%d is divisible by 33", value),
		}
	}

	if diff := value - 201; diff >= -5 && diff <= 5 {
		return Trigger{
			Triggered: true,
			Type:      Near201,
			Tier:      TierLow,
			Boost:     3,
			Name:      "THE ORDER (near)",
			Detail:    fmt.Sprintf("%d is within 5 of 201", value),
		}
	}

	if value != 0 && TeslaAligned(value) {
		return Trigger{
			Triggered: true,
			Type:      TeslaAlignedHit,
			Tier:      TierLow,
			Boost:     4,
			Name:      "TESLA 3-6-9",
			Detail:    fmt.Sprintf("%d reduces to a Tesla number mod 9", value),
		}
	}

	return Trigger{Type: NoTrigger}
}
