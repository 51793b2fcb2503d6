package models

// CommentaryTable holds the static analysis text shown next to the charts.
// It is content, not logic: swap it to reuse the service for another year.
type CommentaryTable struct {
	SeedWinRates       map[int]float64   `yaml:"seed_win_rates" json:"seed_win_rates"`
	DefaultWinRate     float64           `yaml:"default_win_rate" json:"default_win_rate"`
	TeamDescriptions   map[string]string `yaml:"team_descriptions" json:"team_descriptions"`
	DefaultDescription string            `yaml:"default_description" json:"default_description"`
	MatchupAnalyses    map[string]string `yaml:"matchup_analyses" json:"matchup_analyses"`
	UpsetAnalyses      map[string]string `yaml:"upset_analyses" json:"upset_analyses"`
	DefaultUpset       string            `yaml:"default_upset_analysis" json:"default_upset_analysis"`
}
