package logic

import "github.com/bracketlab/bracket-stats/internal/models"

// BracketService exposes the dataset and everything derived from it.
// Implementations are safe for concurrent use; the bracket is read-only.
type BracketService interface {
	Bracket() *models.Bracket
	Regions() []models.Region
	RegionMatchups(region models.Region) []models.Matchup
	MatchupDetail(region models.Region, index int) (*models.MatchupDetail, error)
	RegionUpsetStats(rule models.UpsetRule) ([]models.RegionUpsetStats, error)
	Matchups() ([]models.MatchupSummary, error)
	TopUpsets(threshold float64, limit int) ([]models.UpsetHighlight, error)
	ChampionSplit() (models.ChampionSplit, error)
}
