// Command api serves the bracket statistics over HTTP.
//
// @title Bracket Stats API
// @version 1.0
// @description Derived statistics and commentary for the tournament bracket.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
//
// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/bracketlab/bracket-stats/docs"
	"github.com/bracketlab/bracket-stats/internal/charts"
	"github.com/bracketlab/bracket-stats/internal/config"
	"github.com/bracketlab/bracket-stats/internal/content"
	"github.com/bracketlab/bracket-stats/internal/dataset"
	"github.com/bracketlab/bracket-stats/internal/handlers"
	"github.com/bracketlab/bracket-stats/internal/logic"
	"github.com/bracketlab/bracket-stats/internal/models"
	"github.com/bracketlab/bracket-stats/internal/viewstate"
	"github.com/bracketlab/bracket-stats/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres is only needed for archived brackets
	var pg *pgxpool.Pool
	if cfg.PostgresURL != "" {
		pg, err = pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			sugar.Fatalw("Failed to connect to Postgres", "error", err)
		}
		defer pg.Close()
	}

	src, err := datasetSource(cfg, pg)
	if err != nil {
		sugar.Fatalw("Invalid dataset source", "error", err)
	}

	// Dataset and commentary load independently
	var bracket *models.Bracket
	var table models.CommentaryTable
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := dataset.Load(gctx, src)
		if err != nil {
			return err
		}
		bracket = b
		return nil
	})
	g.Go(func() error {
		t, err := content.Load(cfg.CommentaryPath)
		if err != nil {
			return fmt.Errorf("load commentary: %w", err)
		}
		table = t
		return nil
	})
	if err := g.Wait(); err != nil {
		sugar.Fatalw("Failed to load bracket data", "error", err)
	}
	sugar.Infow("Bracket loaded",
		"source", src.Name(),
		"matchups", bracket.TotalMatchups(),
		"champion", bracket.Champion.Name,
	)

	svc := logic.NewBracketService(bracket, table)

	// View events go to ClickHouse when configured, otherwise to the log
	var ch driver.Conn
	var sink worker.Sink = worker.NewLogSink(logger)
	if cfg.ClickHouseURL != "" {
		opts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
		if err != nil {
			sugar.Fatalw("Invalid CLICKHOUSE_URL", "error", err)
		}
		ch, err = clickhouse.Open(opts)
		if err != nil {
			sugar.Fatalw("Failed to connect to ClickHouse", "error", err)
		}
		defer ch.Close()
		sink = worker.NewClickHouseSink(ch, logger)
	}

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Sink:          sink,
		Logger:        logger,
	})
	pool.Start(context.Background())

	var store viewstate.Store = viewstate.NewMemoryStore()
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()
		store = viewstate.NewRedisStore(rdb, cfg.ViewTTL)
	}

	views := viewstate.NewService(store, pool, func(r models.Region) int {
		return len(svc.RegionMatchups(r))
	})

	hcfg := handlers.Config{
		Bracket:        svc,
		Views:          views,
		Charts:         charts.NewRenderer(0, 0),
		Events:         pool,
		Logger:         logger,
		ClickHouse:     ch,
		UpsetRule:      cfg.UpsetRule,
		UpsetThreshold: cfg.UpsetThreshold,
		UpsetLimit:     cfg.UpsetLimit,
		AdminToken:     cfg.AdminToken,
	}
	// Typed nils would make the readiness probe ping absent stores
	if pg != nil {
		hcfg.Postgres = pg
	}
	if rdb != nil {
		hcfg.Redis = rdb
	}
	h := handlers.New(hcfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.NewRouter(h, cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env, "upsetRule", cfg.UpsetRule)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server forced to shutdown", "error", err)
	}

	pool.Stop()
	sugar.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func datasetSource(cfg *config.Config, pg *pgxpool.Pool) (dataset.Source, error) {
	switch cfg.DatasetSource {
	case config.SourceFile:
		return dataset.FileSource{Path: cfg.DatasetPath}, nil
	case config.SourcePostgres:
		if pg == nil {
			return nil, errors.New("postgres dataset source needs POSTGRES_URL")
		}
		return dataset.PostgresSource{Pool: pg, Year: cfg.DatasetYear}, nil
	default:
		return dataset.EmbeddedSource{}, nil
	}
}
