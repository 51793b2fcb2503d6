// Package charts renders the bracket statistics as PNG or SVG images.
package charts

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("no chart data")

// Format is an output image format
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

// ContentType is the MIME type of the rendered image
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// palette matches the dashboard colors
var palette = []drawing.Color{
	drawing.ColorFromHex("0088FE"),
	drawing.ColorFromHex("00C49F"),
	drawing.ColorFromHex("FFBB28"),
	drawing.ColorFromHex("FF8042"),
	drawing.ColorFromHex("8884d8"),
	drawing.ColorFromHex("82ca9d"),
}

var (
	regionBarColor = drawing.ColorFromHex("8884d8")
	upsetBarColor  = drawing.ColorFromHex("FF8042")
)

// Renderer draws charts at a fixed size
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer returns a renderer; non-positive sizes fall back to 800x480.
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 480
	}
	return &Renderer{Width: width, Height: height}
}

func (r *Renderer) percentBars(title string, bars []chart.Value) chart.BarChart {
	barWidth := max(20, r.Width/(2*len(bars)+2))
	return chart.BarChart{
		Title:      title,
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 30, Bottom: 20}},
		YAxis: chart.YAxis{
			Name:  "Percent",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}
}

// RegionUpsets draws the upset percentage of each region
func (r *Renderer) RegionUpsets(w io.Writer, stats []models.RegionUpsetStats, f Format) error {
	if len(stats) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(stats))
	for _, s := range stats {
		bars = append(bars, chart.Value{
			Label: string(s.Region),
			Value: s.UpsetPercentage,
			Style: chart.Style{FillColor: regionBarColor, StrokeColor: regionBarColor},
		})
	}

	bc := r.percentBars("Upset Potential by Region", bars)
	if err := bc.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render region chart: %w", err)
	}
	return nil
}

// TopUpsets draws the upset probability of each listed matchup
func (r *Renderer) TopUpsets(w io.Writer, upsets []models.MatchupSummary, f Format) error {
	if len(upsets) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(upsets))
	for _, u := range upsets {
		bars = append(bars, chart.Value{
			Label: u.MatchupName,
			Value: u.UpsetProbability,
			Style: chart.Style{FillColor: upsetBarColor, StrokeColor: upsetBarColor},
		})
	}

	bc := r.percentBars("Top Potential Upsets", bars)
	if err := bc.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render upsets chart: %w", err)
	}
	return nil
}

// Champion draws the championship pie: the predicted champion against the
// rest of the field.
func (r *Renderer) Champion(w io.Writer, split models.ChampionSplit, f Format) error {
	values := []chart.Value{
		{
			Label: fmt.Sprintf("%s: %.1f%%", split.Champion.Name, split.ChampionShare),
			Value: split.ChampionShare,
			Style: chart.Style{FillColor: palette[0]},
		},
		{
			Label: fmt.Sprintf("Other Teams: %.1f%%", split.OtherShare),
			Value: split.OtherShare,
			Style: chart.Style{FillColor: palette[1]},
		},
	}
	if split.ChampionShare+split.OtherShare <= 0 {
		return ErrNoData
	}

	pie := chart.PieChart{
		Title:  "Championship Probability",
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	if err := pie.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render champion chart: %w", err)
	}
	return nil
}
