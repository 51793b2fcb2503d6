package logic

import (
	"errors"
	"math"
	"testing"

	"github.com/bracketlab/bracket-stats/internal/models"
)

func team(name string, seed models.Seed) models.Team {
	return models.Team{Name: name, Seed: seed}
}

func matchup(t1, t2 models.Team, winner int, p float64) models.Matchup {
	m := models.Matchup{Team1: t1, Team2: t2, Probability: p}
	if winner == 1 {
		m.Winner = t1
	} else {
		m.Winner = t2
	}
	return m
}

// eastExample is the two-matchup East region used throughout these tests.
func eastExample() *models.Bracket {
	return &models.Bracket{
		FirstRound: map[models.Region][]models.Matchup{
			models.RegionEast: {
				matchup(team("One", "1"), team("Sixteen", "16"), 1, 0.95),
				matchup(team("Eight", "8"), team("Nine", "9"), 2, 0.55),
			},
		},
		Champion: models.Champion{Name: "One", Seed: "1", Region: models.RegionEast, Probability: 0.25},
	}
}

func TestComputeRegionUpsetStats_Example(t *testing.T) {
	stats, err := ComputeRegionUpsetStats(eastExample(), models.UpsetRuleLegacy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 4 {
		t.Fatalf("got %d regions, want 4", len(stats))
	}

	east := stats[0]
	if east.Region != models.RegionEast {
		t.Errorf("first region = %s, want East", east.Region)
	}
	if east.UpsetCount != 0 || east.TotalMatchups != 2 || east.UpsetPercentage != 0 {
		t.Errorf("East = %+v, want 0 upsets of 2 at 0%%", east)
	}

	for _, s := range stats[1:] {
		if s.TotalMatchups != 0 || s.UpsetPercentage != 0 {
			t.Errorf("%s = %+v, want empty region at 0%%", s.Region, s)
		}
		if math.IsNaN(s.UpsetPercentage) {
			t.Errorf("%s percentage is NaN", s.Region)
		}
	}
}

func TestComputeRegionUpsetStats_Rules(t *testing.T) {
	b := &models.Bracket{
		FirstRound: map[models.Region][]models.Matchup{
			models.RegionSouth: {
				// team1 is the underdog and won: an upset under both rules
				matchup(team("Eleven", "11"), team("Six", "6"), 1, 0.51),
				// team2 is the underdog and won: only the seed rule sees it
				matchup(team("Eight", "8"), team("Nine", "9"), 2, 0.54),
				matchup(team("One", "1"), team("Sixteen", "16b"), 1, 0.98),
				matchup(team("Two", "2"), team("Fifteen", "15"), 1, 0.94),
			},
		},
	}

	tests := []struct {
		rule      models.UpsetRule
		wantCount int
		wantPct   float64
	}{
		{rule: models.UpsetRuleLegacy, wantCount: 1, wantPct: 25},
		{rule: "", wantCount: 1, wantPct: 25},
		{rule: models.UpsetRuleSeed, wantCount: 2, wantPct: 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.rule), func(t *testing.T) {
			stats, err := ComputeRegionUpsetStats(b, tt.rule)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			south := stats[2]
			if south.UpsetCount != tt.wantCount {
				t.Errorf("UpsetCount = %d, want %d", south.UpsetCount, tt.wantCount)
			}
			if south.UpsetPercentage != tt.wantPct {
				t.Errorf("UpsetPercentage = %v, want %v", south.UpsetPercentage, tt.wantPct)
			}
			if south.Rule == "" {
				t.Error("Rule should be reported")
			}
		})
	}
}

func TestComputeRegionUpsetStats_ParseError(t *testing.T) {
	b := eastExample()
	b.FirstRound[models.RegionEast][0].Team2.Seed = "x"

	_, err := ComputeRegionUpsetStats(b, models.UpsetRuleLegacy)
	var pe *models.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *models.ParseError", err)
	}
}

func TestFlattenMatchups_Example(t *testing.T) {
	records, err := FlattenMatchups(eastExample())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.MatchupName != "One vs Sixteen" || first.IsUpset || first.UpsetProbability != 95 {
		t.Errorf("first = %+v", first)
	}

	second := records[1]
	want := models.MatchupSummary{
		MatchupName:      "Eight vs Nine",
		Region:           models.RegionEast,
		UpsetProbability: 55.00000000000001,
		HigherSeed:       "Eight",
		LowerSeed:        "Nine",
		Winner:           "Nine",
		IsUpset:          true,
	}
	if math.Abs(second.UpsetProbability-55) > 1e-9 {
		t.Errorf("UpsetProbability = %v, want 55", second.UpsetProbability)
	}
	second.UpsetProbability = want.UpsetProbability
	if second != want {
		t.Errorf("second = %+v, want %+v", second, want)
	}
}

func TestSummarizeMatchup_SeedOrdering(t *testing.T) {
	tests := []struct {
		name       string
		m          models.Matchup
		wantHigher string
		wantLower  string
		wantUpset  bool
	}{
		{
			name:       "Favorite Listed Second",
			m:          matchup(team("Underdog", "12"), team("Favorite", "5"), 2, 0.65),
			wantHigher: "Favorite",
			wantLower:  "Underdog",
		},
		{
			name:       "Underdog Listed First Wins",
			m:          matchup(team("Underdog", "12"), team("Favorite", "5"), 1, 0.52),
			wantHigher: "Favorite",
			wantLower:  "Underdog",
			wantUpset:  true,
		},
		{
			name:       "Play-in Suffix",
			m:          matchup(team("Top", "1"), team("PlayIn", "16a"), 1, 0.99),
			wantHigher: "Top",
			wantLower:  "PlayIn",
		},
		{
			name:       "Equal Seeds Report Team2",
			m:          matchup(team("A", "16a"), team("B", "16b"), 2, 0.5),
			wantHigher: "B",
			wantLower:  "B",
			wantUpset:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SummarizeMatchup(models.RegionWest, tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.HigherSeed != tt.wantHigher || got.LowerSeed != tt.wantLower {
				t.Errorf("higher/lower = %s/%s, want %s/%s", got.HigherSeed, got.LowerSeed, tt.wantHigher, tt.wantLower)
			}
			if got.IsUpset != tt.wantUpset {
				t.Errorf("IsUpset = %v, want %v", got.IsUpset, tt.wantUpset)
			}
			if got.IsUpset != (got.Winner == got.LowerSeed) {
				t.Error("IsUpset must equal winner == lower seed")
			}
		})
	}
}

func TestTopUpsets(t *testing.T) {
	records := []models.MatchupSummary{
		{MatchupName: "a", UpsetProbability: 30},
		{MatchupName: "b", UpsetProbability: 45},
		{MatchupName: "c", UpsetProbability: 80},
		{MatchupName: "d", UpsetProbability: 45},
		{MatchupName: "e", UpsetProbability: 10},
		{MatchupName: "f", UpsetProbability: 60},
		{MatchupName: "g", UpsetProbability: 31},
		{MatchupName: "h", UpsetProbability: 99},
	}

	got := TopUpsets(records, DefaultUpsetThreshold, DefaultUpsetLimit)
	want := []string{"h", "c", "f", "b", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].MatchupName != name {
			t.Errorf("got[%d] = %s, want %s", i, got[i].MatchupName, name)
		}
	}

	for i := 1; i < len(got); i++ {
		if got[i].UpsetProbability > got[i-1].UpsetProbability {
			t.Errorf("not sorted descending at %d", i)
		}
	}
	for _, r := range got {
		if r.UpsetProbability <= DefaultUpsetThreshold {
			t.Errorf("%s has %v, not above threshold", r.MatchupName, r.UpsetProbability)
		}
	}

	if records[0].MatchupName != "a" || records[7].MatchupName != "h" {
		t.Error("input slice must not be reordered")
	}
}

func TestTopUpsets_Limits(t *testing.T) {
	records := []models.MatchupSummary{
		{MatchupName: "a", UpsetProbability: 50},
		{MatchupName: "b", UpsetProbability: 20},
	}

	if got := TopUpsets(records, 30, 0); len(got) != 0 {
		t.Errorf("limit 0 returned %d records", len(got))
	}
	if got := TopUpsets(records, 30, 10); len(got) != 1 {
		t.Errorf("got %d records, want 1", len(got))
	}
	if got := TopUpsets(nil, 30, 5); got == nil || len(got) != 0 {
		t.Errorf("nil input returned %v, want empty slice", got)
	}
}

func TestComputeChampionSplit(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		b := eastExample()
		b.Champion.Probability = p

		split, err := ComputeChampionSplit(b)
		if err != nil {
			t.Fatalf("p=%v: unexpected error: %v", p, err)
		}
		if split.ChampionShare+split.OtherShare != 100 {
			t.Errorf("p=%v: shares sum to %v", p, split.ChampionShare+split.OtherShare)
		}
		if split.ChampionShare != p*100 {
			t.Errorf("p=%v: ChampionShare = %v", p, split.ChampionShare)
		}
	}

	b := eastExample()
	b.Champion.Probability = 0.22
	split, err := ComputeChampionSplit(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(split.ChampionShare+split.OtherShare-100) > 1e-9 {
		t.Errorf("shares sum to %v", split.ChampionShare+split.OtherShare)
	}
}

func TestComputeChampionSplit_OutOfRange(t *testing.T) {
	for _, p := range []float64{-0.01, 1.5, math.NaN()} {
		b := eastExample()
		b.Champion.Probability = p
		if _, err := ComputeChampionSplit(b); !errors.Is(err, ErrProbabilityOutOfRange) {
			t.Errorf("p=%v: error = %v, want ErrProbabilityOutOfRange", p, err)
		}
	}
}
