// Command chartgen renders the dashboard charts of a bracket dataset to
// web/static/img. With CLICKHOUSE_URL set it also prints how often each
// region's matchups were opened.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ClickHouse/clickhouse-go/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bracketlab/bracket-stats/internal/charts"
	"github.com/bracketlab/bracket-stats/internal/content"
	"github.com/bracketlab/bracket-stats/internal/dataset"
	"github.com/bracketlab/bracket-stats/internal/logic"
	"github.com/bracketlab/bracket-stats/internal/models"
)

const outputDir = "web/static/img"

func main() {
	ctx := context.Background()

	var src dataset.Source = dataset.EmbeddedSource{}
	if path := os.Getenv("DATASET_PATH"); path != "" {
		src = dataset.FileSource{Path: path}
	}
	bracket, err := dataset.Load(ctx, src)
	if err != nil {
		log.Fatal(err)
	}
	table, err := content.Default()
	if err != nil {
		log.Fatal(err)
	}
	svc := logic.NewBracketService(bracket, table)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatal(err)
	}

	renderer := charts.NewRenderer(800, 480)
	g, _ := errgroup.WithContext(ctx)
	for _, format := range []charts.Format{charts.FormatPNG, charts.FormatSVG} {
		format := format
		g.Go(func() error { return generateRegionChart(svc, renderer, format) })
		g.Go(func() error { return generateUpsetChart(svc, renderer, format) })
		g.Go(func() error { return generateChampionChart(svc, renderer, format) })
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	if dsn := os.Getenv("CLICKHOUSE_URL"); dsn != "" {
		printViewActivity(ctx, dsn)
	}
}

func generateRegionChart(svc logic.BracketService, r *charts.Renderer, f charts.Format) error {
	stats, err := svc.RegionUpsetStats(models.UpsetRuleLegacy)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.RegionUpsets(&buf, stats, f); err != nil {
		return fmt.Errorf("region chart: %w", err)
	}
	return saveChart("region_upsets."+string(f), buf.Bytes())
}

func generateUpsetChart(svc logic.BracketService, r *charts.Renderer, f charts.Format) error {
	top, err := svc.TopUpsets(logic.DefaultUpsetThreshold, logic.DefaultUpsetLimit)
	if err != nil {
		return err
	}
	records := make([]models.MatchupSummary, len(top))
	for i, u := range top {
		records[i] = u.MatchupSummary
	}
	var buf bytes.Buffer
	if err := r.TopUpsets(&buf, records, f); err != nil {
		return fmt.Errorf("upset chart: %w", err)
	}
	return saveChart("top_upsets."+string(f), buf.Bytes())
}

func generateChampionChart(svc logic.BracketService, r *charts.Renderer, f charts.Format) error {
	split, err := svc.ChampionSplit()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.Champion(&buf, split, f); err != nil {
		return fmt.Errorf("champion chart: %w", err)
	}
	return saveChart("champion."+string(f), buf.Bytes())
}

func saveChart(filename string, data []byte) error {
	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Printf("Chart generated: %s\n", path)
	return nil
}

func printViewActivity(ctx context.Context, dsn string) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		log.Printf("Invalid CLICKHOUSE_URL: %v", err)
		return
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		log.Printf("Failed to open ClickHouse: %v", err)
		return
	}
	defer conn.Close()

	fmt.Println("Querying matchup views per region...")
	rows, err := conn.Query(ctx, `
		SELECT region, count() AS views
		FROM bracket_stats.view_events
		WHERE kind = 'matchup_selected' AND matchup_index >= 0
		GROUP BY region
		ORDER BY views DESC
	`)
	if err != nil {
		log.Printf("Failed to query view activity: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var region string
		var views uint64
		if err := rows.Scan(&region, &views); err != nil {
			continue
		}
		fmt.Printf("  %-8s %d\n", region, views)
	}
}
