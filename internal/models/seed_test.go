package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSeedNumber(t *testing.T) {
	tests := []struct {
		seed    Seed
		want    int
		wantErr bool
	}{
		{seed: "1", want: 1},
		{seed: "16", want: 16},
		{seed: "16a", want: 16},
		{seed: "16b", want: 16},
		{seed: "11B", want: 11},
		{seed: " 8 ", want: 8},
		{seed: "", wantErr: true},
		{seed: "abc", wantErr: true},
		{seed: "1x6", wantErr: true},
		{seed: "0", wantErr: true},
		{seed: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.seed), func(t *testing.T) {
			got, err := tt.seed.Number()
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Number() error = %v, want *ParseError", err)
				}
				if pe.Seed != string(tt.seed) {
					t.Errorf("ParseError.Seed = %q, want %q", pe.Seed, tt.seed)
				}
				return
			}
			if err != nil {
				t.Fatalf("Number() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Number() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeedUnmarshal(t *testing.T) {
	var teams []Team
	input := `[{"name": "Duke", "seed": 1}, {"name": "American", "seed": "16b"}]`
	if err := json.Unmarshal([]byte(input), &teams); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if teams[0].Seed != "1" {
		t.Errorf("Seed = %q, want 1", teams[0].Seed)
	}
	if teams[1].Seed != "16b" {
		t.Errorf("Seed = %q, want 16b", teams[1].Seed)
	}
}

func TestParseRegion(t *testing.T) {
	if r, ok := ParseRegion("Midwest"); !ok || r != RegionMidwest {
		t.Errorf("ParseRegion(Midwest) = %q, %v", r, ok)
	}
	if _, ok := ParseRegion("midwest"); ok {
		t.Error("ParseRegion should be case sensitive")
	}
}

func TestRegionMatchupsMissing(t *testing.T) {
	b := &Bracket{FirstRound: map[Region][]Matchup{RegionEast: {{}}}}
	if got := b.RegionMatchups(RegionWest); got == nil || len(got) != 0 {
		t.Errorf("RegionMatchups(West) = %v, want empty non-nil slice", got)
	}
	if got := b.TotalMatchups(); got != 1 {
		t.Errorf("TotalMatchups() = %d, want 1", got)
	}
}
