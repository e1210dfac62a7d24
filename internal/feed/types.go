// Package feed pulls upcoming games from an odds feed and normalizes
// them into scorer input. Feeds disagree on field names, so the wire
// types accept both snake_case and camelCase spellings.
package feed

// rawGame is one game as the feed sends it. Every field that has been
// seen under two names carries both; normalization coalesces them.
type rawGame struct {
	Sport  string `json:"sport"`
	League string `json:"league"`

	HomeTeam    string `json:"home_team"`
	HomeTeamAlt string `json:"homeTeam"`
	AwayTeam    string `json:"away_team"`
	AwayTeamAlt string `json:"awayTeam"`
	Venue       string `json:"venue"`

	CommenceTime    string `json:"commence_time"`
	CommenceTimeAlt string `json:"commenceTime"`

	BetType    string `json:"bet_type"`
	BetTypeAlt string `json:"betType"`
	Side       string `json:"side"`
	SideAlt    string `json:"pick"`

	Line   *float64 `json:"line"`
	Spread *float64 `json:"spread"`
	Odds   int      `json:"odds"`
	Price  int      `json:"price"`

	Splits      *rawSplits      `json:"splits"`
	Rest        *rawRest        `json:"rest"`
	Injuries    []rawInjury     `json:"injuries"`
	Predictions *rawPredictions `json:"predictions"`
	Legs        []rawLeg        `json:"legs"`
}

type rawSplits struct {
	HomeTicketPct    float64  `json:"home_ticket_pct"`
	HomeTicketPctAlt *float64 `json:"ticketPct"`
	HomeMoneyPct     float64  `json:"home_money_pct"`
	HomeMoneyPctAlt  *float64 `json:"moneyPct"`
}

type rawRest struct {
	HomeDays int `json:"home_days"`
	AwayDays int `json:"away_days"`
}

type rawInjury struct {
	Team   string `json:"team"`
	Player string `json:"player"`
	Status string `json:"status"`
}

type rawPredictions struct {
	Ensemble float64 `json:"ensemble"`
	LSTM     float64 `json:"lstm"`
}

type rawLeg struct {
	Odds int `json:"odds"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
