package logic

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// Commentator answers lookups against an injected commentary table
type Commentator struct {
	table models.CommentaryTable
}

func NewCommentator(table models.CommentaryTable) *Commentator {
	return &Commentator{table: table}
}

// SeedHistoricalWinRate returns the historical first-round win rate of a
// seed line in percent. Unknown or malformed seeds get the default rate.
func (c *Commentator) SeedHistoricalWinRate(seed models.Seed) float64 {
	n, err := seed.Number()
	if err != nil {
		return c.table.DefaultWinRate
	}
	return c.winRate(n)
}

func (c *Commentator) winRate(n int) float64 {
	if rate, ok := c.table.SeedWinRates[n]; ok {
		return rate
	}
	return c.table.DefaultWinRate
}

// TeamDescription returns the scouting blurb for a team
func (c *Commentator) TeamDescription(name string) string {
	if desc, ok := c.table.TeamDescriptions[name]; ok {
		return desc
	}
	return c.table.DefaultDescription
}

// MatchupAnalysis returns the curated analysis for a matchup, or a sentence
// built from the seed win-rate table. Here an upset is either team with the
// larger seed winning.
func (c *Commentator) MatchupAnalysis(m models.Matchup) (string, error) {
	if text, ok := c.table.MatchupAnalyses[m.Name()]; ok {
		return text, nil
	}

	s1, s2, err := seedPair(m)
	if err != nil {
		return "", err
	}
	isUpset := (s1 > s2 && m.Winner.Name == m.Team1.Name) ||
		(s2 > s1 && m.Winner.Name == m.Team2.Name)

	lo, hi := min(s1, s2), max(s1, s2)
	history := fmt.Sprintf("Historical data shows %d-seeds win approximately %s%% of the time against %d-seeds.",
		lo, formatRate(c.winRate(lo)), hi)

	if isUpset {
		return "This represents a potential upset based on specific team factors that overcome the typical seed advantage. " + history, nil
	}
	return "The higher seed is favored as expected in this matchup. " + history, nil
}

// UpsetAnalysis returns the commentary for a top-upset record, keyed by
// "{lower seed} vs {higher seed}".
func (c *Commentator) UpsetAnalysis(s models.MatchupSummary) string {
	if text, ok := c.table.UpsetAnalyses[s.LowerSeed+" vs "+s.HigherSeed]; ok {
		return text
	}
	return c.table.DefaultUpset
}

// MatchupDetail assembles the analysis panel for the index-th matchup of region.
func (c *Commentator) MatchupDetail(region models.Region, index int, m models.Matchup) (*models.MatchupDetail, error) {
	team1, err := c.teamPanel(m.Team1)
	if err != nil {
		return nil, err
	}
	team2, err := c.teamPanel(m.Team2)
	if err != nil {
		return nil, err
	}
	analysis, err := c.MatchupAnalysis(m)
	if err != nil {
		return nil, err
	}

	return &models.MatchupDetail{
		Region:      region,
		Index:       index,
		Matchup:     m,
		Team1:       team1,
		Team2:       team2,
		Prediction:  fmt.Sprintf("%s wins (%.1f%% probability)", m.Winner.Name, m.Probability*100),
		Probability: m.Probability,
		Analysis:    analysis,
	}, nil
}

func (c *Commentator) teamPanel(t models.Team) (models.TeamPanel, error) {
	n, err := t.Seed.Number()
	if err != nil {
		return models.TeamPanel{}, err
	}
	return models.TeamPanel{
		Team:               t,
		SeedStrengthFactor: math.Round(100/float64(n)) / 100,
		HistoricalWinRate:  c.winRate(n),
		Description:        c.TeamDescription(t.Name),
	}, nil
}

// formatRate prints a rate the way it appears in the commentary table:
// shortest representation, no trailing zeros.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
