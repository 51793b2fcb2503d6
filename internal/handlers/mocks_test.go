package handlers

import (
	"context"
	"io"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/bracketlab/bracket-stats/internal/charts"
	"github.com/bracketlab/bracket-stats/internal/models"
)

// MockBracketService
type MockBracketService struct {
	BracketFunc          func() *models.Bracket
	RegionMatchupsFunc   func(region models.Region) []models.Matchup
	MatchupDetailFunc    func(region models.Region, index int) (*models.MatchupDetail, error)
	RegionUpsetStatsFunc func(rule models.UpsetRule) ([]models.RegionUpsetStats, error)
	MatchupsFunc         func() ([]models.MatchupSummary, error)
	TopUpsetsFunc        func(threshold float64, limit int) ([]models.UpsetHighlight, error)
	ChampionSplitFunc    func() (models.ChampionSplit, error)
}

func (m *MockBracketService) Bracket() *models.Bracket {
	if m.BracketFunc != nil {
		return m.BracketFunc()
	}
	return &models.Bracket{}
}

func (m *MockBracketService) Regions() []models.Region {
	return models.Regions
}

func (m *MockBracketService) RegionMatchups(region models.Region) []models.Matchup {
	if m.RegionMatchupsFunc != nil {
		return m.RegionMatchupsFunc(region)
	}
	return []models.Matchup{}
}

func (m *MockBracketService) MatchupDetail(region models.Region, index int) (*models.MatchupDetail, error) {
	if m.MatchupDetailFunc != nil {
		return m.MatchupDetailFunc(region, index)
	}
	return &models.MatchupDetail{Region: region, Index: index}, nil
}

func (m *MockBracketService) RegionUpsetStats(rule models.UpsetRule) ([]models.RegionUpsetStats, error) {
	if m.RegionUpsetStatsFunc != nil {
		return m.RegionUpsetStatsFunc(rule)
	}
	return nil, nil
}

func (m *MockBracketService) Matchups() ([]models.MatchupSummary, error) {
	if m.MatchupsFunc != nil {
		return m.MatchupsFunc()
	}
	return nil, nil
}

func (m *MockBracketService) TopUpsets(threshold float64, limit int) ([]models.UpsetHighlight, error) {
	if m.TopUpsetsFunc != nil {
		return m.TopUpsetsFunc(threshold, limit)
	}
	return nil, nil
}

func (m *MockBracketService) ChampionSplit() (models.ChampionSplit, error) {
	if m.ChampionSplitFunc != nil {
		return m.ChampionSplitFunc()
	}
	return models.ChampionSplit{}, nil
}

// MockViewService
type MockViewService struct {
	CreateFunc func(ctx context.Context) (models.ViewState, error)
	GetFunc    func(ctx context.Context, id string) (models.ViewState, error)
	UpdateFunc func(ctx context.Context, id string, upd models.ViewStateUpdate) (models.ViewState, error)
}

func (m *MockViewService) Create(ctx context.Context) (models.ViewState, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx)
	}
	return models.ViewState{ID: "mock"}, nil
}

func (m *MockViewService) Get(ctx context.Context, id string) (models.ViewState, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return models.ViewState{ID: id}, nil
}

func (m *MockViewService) Update(ctx context.Context, id string, upd models.ViewStateUpdate) (models.ViewState, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return models.ViewState{ID: id}, nil
}

// MockChartRenderer writes a fixed payload and records what it was asked to draw
type MockChartRenderer struct {
	Err      error
	LastKind string
	LastRows int
}

func (m *MockChartRenderer) RegionUpsets(w io.Writer, stats []models.RegionUpsetStats, f charts.Format) error {
	return m.draw(w, "regions", len(stats))
}

func (m *MockChartRenderer) TopUpsets(w io.Writer, upsets []models.MatchupSummary, f charts.Format) error {
	return m.draw(w, "upsets", len(upsets))
}

func (m *MockChartRenderer) Champion(w io.Writer, split models.ChampionSplit, f charts.Format) error {
	return m.draw(w, "champion", 2)
}

func (m *MockChartRenderer) draw(w io.Writer, kind string, rows int) error {
	m.LastKind = kind
	m.LastRows = rows
	if m.Err != nil {
		return m.Err
	}
	_, err := io.WriteString(w, "chart:"+kind)
	return err
}

// MockPostgres
type MockPostgres struct {
	PingErr error
	ExecErr error
	Execs   []string
}

func (m *MockPostgres) Ping(ctx context.Context) error { return m.PingErr }

func (m *MockPostgres) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.Execs = append(m.Execs, sql)
	return pgconn.CommandTag{}, m.ExecErr
}

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn
	PingErr error
	ExecErr error
	Execs   []string
}

func (m *MockClickHouseConn) Ping(ctx context.Context) error { return m.PingErr }

func (m *MockClickHouseConn) Exec(ctx context.Context, query string, args ...any) error {
	m.Execs = append(m.Execs, query)
	return m.ExecErr
}

// MockRedis
type MockRedis struct {
	Err error
}

func (m *MockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", m.Err)
}

// MockEventQueue
type MockEventQueue struct {
	Depth int
}

func (m *MockEventQueue) QueueDepth() int { return m.Depth }
