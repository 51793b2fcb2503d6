package logic

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/bracketlab/bracket-stats/internal/models"
)

const (
	// DefaultUpsetThreshold is the minimum upset probability, in percent,
	// for a matchup to appear in the top upsets list.
	DefaultUpsetThreshold = 30.0
	// DefaultUpsetLimit caps the top upsets list
	DefaultUpsetLimit = 5
)

// ErrProbabilityOutOfRange is returned when a probability lies outside [0,1].
var ErrProbabilityOutOfRange = errors.New("probability out of range [0,1]")

// seedPair parses both seeds of a matchup
func seedPair(m models.Matchup) (int, int, error) {
	s1, err := m.Team1.Seed.Number()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: team1: %w", m.Name(), err)
	}
	s2, err := m.Team2.Seed.Number()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: team2: %w", m.Name(), err)
	}
	return s1, s2, nil
}

// isRegionUpset applies rule to a single matchup.
func isRegionUpset(m models.Matchup, rule models.UpsetRule) (bool, error) {
	s1, s2, err := seedPair(m)
	if err != nil {
		return false, err
	}
	switch rule {
	case models.UpsetRuleSeed:
		return (s1 > s2 && m.Winner.Name == m.Team1.Name) ||
			(s2 > s1 && m.Winner.Name == m.Team2.Name), nil
	default:
		return s1 > s2 && m.Winner.Name == m.Team1.Name, nil
	}
}

// ComputeRegionUpsetStats counts upsets per region in display order.
// A region with no matchups reports a zero percentage.
func ComputeRegionUpsetStats(b *models.Bracket, rule models.UpsetRule) ([]models.RegionUpsetStats, error) {
	if rule == "" {
		rule = models.UpsetRuleLegacy
	}

	stats := make([]models.RegionUpsetStats, 0, len(models.Regions))
	for _, region := range models.Regions {
		matchups := b.RegionMatchups(region)

		upsets := 0
		for _, m := range matchups {
			upset, err := isRegionUpset(m, rule)
			if err != nil {
				return nil, fmt.Errorf("region %s: %w", region, err)
			}
			if upset {
				upsets++
			}
		}

		pct := 0.0
		if len(matchups) > 0 {
			pct = float64(upsets) / float64(len(matchups)) * 100
		}

		stats = append(stats, models.RegionUpsetStats{
			Region:          region,
			UpsetCount:      upsets,
			TotalMatchups:   len(matchups),
			UpsetPercentage: pct,
			Rule:            rule,
		})
	}
	return stats, nil
}

// SummarizeMatchup annotates a single matchup with its seed ordering and
// upset flag. Equal seeds report team2 as both higher and lower seed.
func SummarizeMatchup(region models.Region, m models.Matchup) (models.MatchupSummary, error) {
	s1, s2, err := seedPair(m)
	if err != nil {
		return models.MatchupSummary{}, err
	}

	higher := m.Team2
	if s1 < s2 {
		higher = m.Team1
	}
	lower := m.Team2
	if s1 > s2 {
		lower = m.Team1
	}

	return models.MatchupSummary{
		MatchupName:      m.Name(),
		Region:           region,
		UpsetProbability: m.Probability * 100,
		HigherSeed:       higher.Name,
		LowerSeed:        lower.Name,
		Winner:           m.Winner.Name,
		IsUpset:          m.Winner.Name == lower.Name,
	}, nil
}

// FlattenMatchups lists every first-round matchup, regions in display
// order and matchups in source order.
func FlattenMatchups(b *models.Bracket) ([]models.MatchupSummary, error) {
	out := make([]models.MatchupSummary, 0, b.TotalMatchups())
	for _, region := range models.Regions {
		for _, m := range b.RegionMatchups(region) {
			summary, err := SummarizeMatchup(region, m)
			if err != nil {
				return nil, fmt.Errorf("region %s: %w", region, err)
			}
			out = append(out, summary)
		}
	}
	return out, nil
}

// TopUpsets keeps records above threshold, sorted by upset probability
// descending with ties in input order, and truncates to limit.
func TopUpsets(records []models.MatchupSummary, threshold float64, limit int) []models.MatchupSummary {
	if limit <= 0 {
		return []models.MatchupSummary{}
	}

	filtered := make([]models.MatchupSummary, 0, len(records))
	for _, r := range records {
		if r.UpsetProbability > threshold {
			filtered = append(filtered, r)
		}
	}

	slices.SortStableFunc(filtered, func(a, b models.MatchupSummary) int {
		return cmp.Compare(b.UpsetProbability, a.UpsetProbability)
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// ComputeChampionSplit splits the championship pie between the predicted
// champion and the rest of the field.
func ComputeChampionSplit(b *models.Bracket) (models.ChampionSplit, error) {
	p := b.Champion.Probability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return models.ChampionSplit{}, fmt.Errorf("champion %s: %w", b.Champion.Name, ErrProbabilityOutOfRange)
	}

	share := p * 100
	return models.ChampionSplit{
		Champion:      b.Champion,
		ChampionShare: share,
		OtherShare:    100 - share,
	}, nil
}
