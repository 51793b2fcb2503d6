package logic

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bracketlab/bracket-stats/internal/models"
)

var (
	ErrUnknownRegion   = errors.New("unknown region")
	ErrMatchupNotFound = errors.New("matchup not found")
)

type bracketService struct {
	bracket     *models.Bracket
	commentator *Commentator
}

// NewBracketService serves derived statistics for a loaded, validated bracket.
func NewBracketService(b *models.Bracket, table models.CommentaryTable) BracketService {
	return &bracketService{
		bracket:     b,
		commentator: NewCommentator(table),
	}
}

func (s *bracketService) Bracket() *models.Bracket {
	return s.bracket
}

// Regions lists the regions in display order
func (s *bracketService) Regions() []models.Region {
	return slices.Clone(models.Regions)
}

func (s *bracketService) RegionMatchups(region models.Region) []models.Matchup {
	return s.bracket.RegionMatchups(region)
}

func (s *bracketService) MatchupDetail(region models.Region, index int) (*models.MatchupDetail, error) {
	if _, ok := models.ParseRegion(string(region)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	matchups := s.bracket.RegionMatchups(region)
	if index < 0 || index >= len(matchups) {
		return nil, fmt.Errorf("%w: %s #%d", ErrMatchupNotFound, region, index)
	}
	return s.commentator.MatchupDetail(region, index, matchups[index])
}

func (s *bracketService) RegionUpsetStats(rule models.UpsetRule) ([]models.RegionUpsetStats, error) {
	return ComputeRegionUpsetStats(s.bracket, rule)
}

func (s *bracketService) Matchups() ([]models.MatchupSummary, error) {
	return FlattenMatchups(s.bracket)
}

func (s *bracketService) TopUpsets(threshold float64, limit int) ([]models.UpsetHighlight, error) {
	all, err := FlattenMatchups(s.bracket)
	if err != nil {
		return nil, err
	}

	top := TopUpsets(all, threshold, limit)
	out := make([]models.UpsetHighlight, 0, len(top))
	for _, m := range top {
		out = append(out, models.UpsetHighlight{
			MatchupSummary: m,
			Analysis:       s.commentator.UpsetAnalysis(m),
		})
	}
	return out, nil
}

func (s *bracketService) ChampionSplit() (models.ChampionSplit, error) {
	return ComputeChampionSplit(s.bracket)
}
