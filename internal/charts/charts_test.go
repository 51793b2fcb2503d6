package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bracketlab/bracket-stats/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("svg"); err != nil || f.ContentType() != "image/svg+xml" {
		t.Errorf("svg: %v %v", f, err)
	}
	if f, err := ParseFormat("png"); err != nil || f.ContentType() != "image/png" {
		t.Errorf("png: %v %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("gif should be rejected")
	}
}

func TestRegionUpsets(t *testing.T) {
	r := NewRenderer(0, 0)
	stats := []models.RegionUpsetStats{
		{Region: models.RegionEast, UpsetPercentage: 12.5},
		{Region: models.RegionWest, UpsetPercentage: 0},
		{Region: models.RegionSouth, UpsetPercentage: 25},
		{Region: models.RegionMidwest, UpsetPercentage: 0},
	}

	var buf bytes.Buffer
	if err := r.RegionUpsets(&buf, stats, FormatPNG); err != nil {
		t.Fatalf("RegionUpsets(png) error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}

	buf.Reset()
	if err := r.RegionUpsets(&buf, stats, FormatSVG); err != nil {
		t.Fatalf("RegionUpsets(svg) error: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG")
	}
}

func TestTopUpsets(t *testing.T) {
	r := NewRenderer(640, 400)
	upsets := []models.MatchupSummary{
		{MatchupName: "Michigan vs UC San Diego", UpsetProbability: 58},
		{MatchupName: "Team_West_8 vs Team_West_9", UpsetProbability: 51.9},
	}

	var buf bytes.Buffer
	if err := r.TopUpsets(&buf, upsets, FormatSVG); err != nil {
		t.Fatalf("TopUpsets error: %v", err)
	}
	if !strings.Contains(buf.String(), "Michigan") {
		t.Error("SVG should carry the matchup labels")
	}

	if err := r.TopUpsets(&buf, nil, FormatPNG); !errors.Is(err, ErrNoData) {
		t.Errorf("empty input: error = %v, want ErrNoData", err)
	}
}

func TestChampion(t *testing.T) {
	r := NewRenderer(400, 400)
	split := models.ChampionSplit{
		Champion:      models.Champion{Name: "Duke", Seed: "1", Region: models.RegionEast, Probability: 0.22},
		ChampionShare: 22,
		OtherShare:    78,
	}

	var buf bytes.Buffer
	if err := r.Champion(&buf, split, FormatPNG); err != nil {
		t.Fatalf("Champion error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}
