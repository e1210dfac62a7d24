package clv

import "linesight/internal/pick"

// GroupStats are win/loss aggregates for picks sharing a key.
type GroupStats struct {
	Picks   int
	Wins    int
	Losses  int
	Pushes  int
	WinRate float64 // pushes excluded from the denominator
	AvgCLV  float64 // over picks with CLV data only
}

// Report is the aggregate performance view over every tracked pick.
type Report struct {
	TotalPicks int
	Graded     int
	Wins       int
	Losses     int
	Pushes     int

	// WinRate is wins over decided picks (pushes excluded), as a
	// percentage. Zero when nothing has decided.
	WinRate float64

	// AvgCLV averages over picks that have CLV data, graded or not.
	AvgCLV          float64
	CLVTracked      int
	PositiveCLVRate float64

	ByTier  map[string]GroupStats
	BySport map[string]GroupStats
}

type groupAcc struct {
	picks, wins, losses, pushes int
	clvSum                      float64
	clvCount                    int
}

func (g *groupAcc) add(p pick.Pick) {
	g.picks++
	switch p.Result {
	case pick.Win:
		g.wins++
	case pick.Loss:
		g.losses++
	case pick.Push:
		g.pushes++
	}
	if p.CLV != nil {
		g.clvSum += *p.CLV
		g.clvCount++
	}
}

func (g *groupAcc) stats() GroupStats {
	s := GroupStats{Picks: g.picks, Wins: g.wins, Losses: g.losses, Pushes: g.pushes}
	if decided := g.wins + g.losses; decided > 0 {
		s.WinRate = float64(g.wins) / float64(decided) * 100
	}
	if g.clvCount > 0 {
		s.AvgCLV = g.clvSum / float64(g.clvCount)
	}
	return s
}

// BuildReport folds picks into a Report. Safe on an empty slice.
func BuildReport(picks []pick.Pick) Report {
	r := Report{
		ByTier:  make(map[string]GroupStats),
		BySport: make(map[string]GroupStats),
	}

	overall := &groupAcc{}
	byTier := map[string]*groupAcc{}
	bySport := map[string]*groupAcc{}
	var clvPositive int

	for _, p := range picks {
		overall.add(p)
		if p.Graded() {
			r.Graded++
		}
		if p.CLV != nil && *p.CLV > 0 {
			clvPositive++
		}
		if p.Tier != "" {
			if byTier[p.Tier] == nil {
				byTier[p.Tier] = &groupAcc{}
			}
			byTier[p.Tier].add(p)
		}
		if p.Sport != "" {
			if bySport[p.Sport] == nil {
				bySport[p.Sport] = &groupAcc{}
			}
			bySport[p.Sport].add(p)
		}
	}

	r.TotalPicks = overall.picks
	r.Wins, r.Losses, r.Pushes = overall.wins, overall.losses, overall.pushes
	r.CLVTracked = overall.clvCount
	if decided := r.Wins + r.Losses; decided > 0 {
		r.WinRate = float64(r.Wins) / float64(decided) * 100
	}
	if overall.clvCount > 0 {
		r.AvgCLV = overall.clvSum / float64(overall.clvCount)
		r.PositiveCLVRate = float64(clvPositive) / float64(overall.clvCount)
	}
	for key, acc := range byTier {
		r.ByTier[key] = acc.stats()
	}
	for key, acc := range bySport {
		r.BySport[key] = acc.stats()
	}
	return r
}
