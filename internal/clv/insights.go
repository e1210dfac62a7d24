package clv

import "fmt"

// breakevenPct is the win rate needed to break even at standard -110.
const breakevenPct = 52.38

// Insights turns a report into human-readable observations for the CLI
// summary. The order is stable: sample size first, then win rate, then
// closing line value.
func Insights(r Report) []string {
	var out []string

	decided := r.Wins + r.Losses
	if decided == 0 {
		out = append(out, "No graded picks yet. Record results to start tracking performance.")
	} else if decided < 30 {
		out = append(out, fmt.Sprintf("Small sample (%d decided picks). Treat every rate below as noise until ~30+.", decided))
	}

	if decided > 0 {
		switch {
		case r.WinRate >= breakevenPct+5:
			out = append(out, fmt.Sprintf("Win rate %.1f%% is well above the %.2f%% breakeven at -110.", r.WinRate, breakevenPct))
		case r.WinRate >= breakevenPct:
			out = append(out, fmt.Sprintf("Win rate %.1f%% clears the %.2f%% breakeven, barely.", r.WinRate, breakevenPct))
		default:
			out = append(out, fmt.Sprintf("Win rate %.1f%% is below the %.2f%% breakeven at -110.", r.WinRate, breakevenPct))
		}
	}

	if r.CLVTracked > 0 {
		switch {
		case r.AvgCLV > 0.5:
			out = append(out, fmt.Sprintf("Average CLV %+.2f: consistently beating the close. This is the metric that matters.", r.AvgCLV))
		case r.AvgCLV > 0:
			out = append(out, fmt.Sprintf("Average CLV %+.2f: slightly ahead of the close.", r.AvgCLV))
		default:
			out = append(out, fmt.Sprintf("Average CLV %+.2f: the market moves against these picks. Results will regress even if the record looks good.", r.AvgCLV))
		}
		if r.PositiveCLVRate > 0 {
			out = append(out, fmt.Sprintf("%.0f%% of tracked picks beat the closing line.", r.PositiveCLVRate*100))
		}
	} else {
		out = append(out, "No closing lines captured yet. CLV is unavailable until closing markets are recorded.")
	}

	if best, ok := bestTier(r.ByTier); ok {
		out = append(out, fmt.Sprintf("Best performing tier: %s (%.1f%% over %d picks).",
			best, r.ByTier[best].WinRate, r.ByTier[best].Picks))
	}
	return out
}

// bestTier picks the tier with the highest win rate among tiers with at
// least 5 decided picks. Ties break alphabetically for stable output.
func bestTier(tiers map[string]GroupStats) (string, bool) {
	var best string
	var bestRate float64
	for name, g := range tiers {
		if g.Wins+g.Losses < 5 {
			continue
		}
		if best == "" || g.WinRate > bestRate || (g.WinRate == bestRate && name < best) {
			best, bestRate = name, g.WinRate
		}
	}
	return best, best != ""
}
