package handlers

import (
	"context"
	"io"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bracketlab/bracket-stats/internal/charts"
	"github.com/bracketlab/bracket-stats/internal/logic"
	"github.com/bracketlab/bracket-stats/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// EventQueue is the view event worker pool as seen by the readiness probe
type EventQueue interface {
	QueueDepth() int
}

// ViewService manages per-client view state
type ViewService interface {
	Create(ctx context.Context) (models.ViewState, error)
	Get(ctx context.Context, id string) (models.ViewState, error)
	Update(ctx context.Context, id string, upd models.ViewStateUpdate) (models.ViewState, error)
}

// ChartRenderer draws the statistics charts
type ChartRenderer interface {
	RegionUpsets(w io.Writer, stats []models.RegionUpsetStats, f charts.Format) error
	TopUpsets(w io.Writer, upsets []models.MatchupSummary, f charts.Format) error
	Champion(w io.Writer, split models.ChampionSplit, f charts.Format) error
}

// PostgresDB is the subset of pgxpool.Pool the handlers use
type PostgresDB interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisPinger is the subset of redis.Client the readiness probe uses
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	Bracket logic.BracketService
	Views   ViewService
	Charts  ChartRenderer
	Events  EventQueue
	Logger  *zap.Logger

	// Optional backing stores; nil means not configured
	Postgres   PostgresDB
	ClickHouse driver.Conn
	Redis      RedisPinger

	// Defaults for the statistics endpoints, used as given. config.Load
	// supplies logic.DefaultUpsetThreshold and logic.DefaultUpsetLimit.
	UpsetRule      models.UpsetRule
	UpsetThreshold float64
	UpsetLimit     int

	// AdminToken guards the system endpoints; empty disables them
	AdminToken string
}

type Handler struct {
	bracket logic.BracketService
	views   ViewService
	charts  ChartRenderer
	events  EventQueue
	pg      PostgresDB
	ch      driver.Conn
	redis   RedisPinger
	logger  *zap.SugaredLogger

	upsetRule      models.UpsetRule
	upsetThreshold float64
	upsetLimit     int
	adminTokenHash string
}

func New(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rule := cfg.UpsetRule
	if rule == "" {
		rule = models.UpsetRuleLegacy
	}

	return &Handler{
		bracket:        cfg.Bracket,
		views:          cfg.Views,
		charts:         cfg.Charts,
		events:         cfg.Events,
		pg:             cfg.Postgres,
		ch:             cfg.ClickHouse,
		redis:          cfg.Redis,
		logger:         logger.Sugar(),
		upsetRule:      rule,
		upsetThreshold: cfg.UpsetThreshold,
		upsetLimit:     cfg.UpsetLimit,
		adminTokenHash: hashTokenIfSet(cfg.AdminToken),
	}
}
