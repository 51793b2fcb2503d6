package models

// UpsetRule selects how the region-level statistic decides that a matchup
// was an upset.
type UpsetRule string

const (
	// UpsetRuleLegacy counts a matchup only when team1 holds the larger seed
	// and team1 won. It ignores upsets where team2 is the underdog.
	UpsetRuleLegacy UpsetRule = "legacy"
	// UpsetRuleSeed counts a matchup whenever the team with the larger seed
	// won, regardless of position. Matches MatchupSummary.IsUpset.
	UpsetRuleSeed UpsetRule = "seed"
)

// ParseUpsetRule maps a query or config value onto a rule. The empty string
// selects the legacy rule.
func ParseUpsetRule(s string) (UpsetRule, bool) {
	switch UpsetRule(s) {
	case "", UpsetRuleLegacy:
		return UpsetRuleLegacy, true
	case UpsetRuleSeed:
		return UpsetRuleSeed, true
	}
	return "", false
}

// RegionUpsetStats aggregates upsets for a single region
type RegionUpsetStats struct {
	Region          Region    `json:"region"`
	UpsetCount      int       `json:"upset_count"`
	TotalMatchups   int       `json:"total_matchups"`
	UpsetPercentage float64   `json:"upset_percentage"`
	Rule            UpsetRule `json:"rule"`
}

// MatchupSummary is a flattened, annotated first-round matchup.
// UpsetProbability is the recorded winner's probability as a percentage,
// which is the underdog's probability only when the underdog won.
type MatchupSummary struct {
	MatchupName      string  `json:"matchup_name"`
	Region           Region  `json:"region"`
	UpsetProbability float64 `json:"upset_probability"`
	HigherSeed       string  `json:"higher_seed"`
	LowerSeed        string  `json:"lower_seed"`
	Winner           string  `json:"winner"`
	IsUpset          bool    `json:"is_upset"`
}

// UpsetHighlight is a top-upset record with its commentary attached
type UpsetHighlight struct {
	MatchupSummary
	Analysis string `json:"analysis"`
}

// ChampionSplit feeds the championship pie chart
type ChampionSplit struct {
	Champion      Champion `json:"champion"`
	ChampionShare float64  `json:"champion_share"`
	OtherShare    float64  `json:"other_share"`
}

// TeamPanel describes one side of the matchup analysis panel
type TeamPanel struct {
	Team               Team    `json:"team"`
	SeedStrengthFactor float64 `json:"seed_strength_factor"`
	HistoricalWinRate  float64 `json:"historical_win_rate"`
	Description        string  `json:"description"`
}

// MatchupDetail is the analysis panel shown for a selected matchup
type MatchupDetail struct {
	Region      Region    `json:"region"`
	Index       int       `json:"index"`
	Matchup     Matchup   `json:"matchup"`
	Team1       TeamPanel `json:"team1"`
	Team2       TeamPanel `json:"team2"`
	Prediction  string    `json:"prediction"`
	Probability float64   `json:"probability"`
	Analysis    string    `json:"analysis"`
}
