package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// PgPool is the subset of pgxpool.Pool used to read archived brackets
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrYearNotFound is returned when no bracket is archived for a year
var ErrYearNotFound = errors.New("no bracket archived for year")

// PostgresSource reads an archived bracket for one tournament year from
// the brackets and first_round_matchups tables.
type PostgresSource struct {
	Pool PgPool
	Year int
}

func (s PostgresSource) Name() string { return fmt.Sprintf("postgres(%d)", s.Year) }

func (s PostgresSource) Fetch(ctx context.Context) (*models.Bracket, error) {
	b := &models.Bracket{FirstRound: make(map[models.Region][]models.Matchup)}

	var seed, region string
	err := s.Pool.QueryRow(ctx, `
		SELECT champion_name, champion_seed, champion_region, champion_probability
		FROM brackets
		WHERE year = $1
	`, s.Year).Scan(&b.Champion.Name, &seed, &region, &b.Champion.Probability)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrYearNotFound, s.Year)
	}
	if err != nil {
		return nil, fmt.Errorf("champion query failed: %w", err)
	}
	b.Champion.Seed = models.Seed(seed)
	b.Champion.Region = models.Region(region)

	rows, err := s.Pool.Query(ctx, `
		SELECT region, team1_name, team1_seed, team2_name, team2_seed, winner_name, probability
		FROM first_round_matchups
		WHERE year = $1
		ORDER BY region, position
	`, s.Year)
	if err != nil {
		return nil, fmt.Errorf("matchups query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var region, name1, seed1, name2, seed2, winner string
		var m models.Matchup
		if err := rows.Scan(&region, &name1, &seed1, &name2, &seed2, &winner, &m.Probability); err != nil {
			return nil, fmt.Errorf("scan matchup: %w", err)
		}

		r := models.Region(region)
		m.Team1 = models.Team{Name: name1, Seed: models.Seed(seed1), Region: r}
		m.Team2 = models.Team{Name: name2, Seed: models.Seed(seed2), Region: r}
		switch winner {
		case name1:
			m.Winner = m.Team1
		case name2:
			m.Winner = m.Team2
		default:
			// Left for Validate to report
			m.Winner = models.Team{Name: winner, Region: r}
		}

		b.FirstRound[r] = append(b.FirstRound[r], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("matchups rows: %w", err)
	}

	return b, nil
}
