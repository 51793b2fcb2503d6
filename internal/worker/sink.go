package worker

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// ClickHouseSink writes view events to bracket_stats.view_events
type ClickHouseSink struct {
	conn   driver.Conn
	logger *zap.SugaredLogger
}

func NewClickHouseSink(conn driver.Conn, logger *zap.Logger) *ClickHouseSink {
	return &ClickHouseSink{conn: conn, logger: logger.Sugar()}
}

func (s *ClickHouseSink) WriteBatch(ctx context.Context, events []models.ViewEvent) error {
	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO bracket_stats.view_events (
			event_id, view_id, kind, region, matchup_index, view, timestamp
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, e := range events {
		err := batch.Append(
			e.ID,
			e.ViewID,
			string(e.Kind),
			string(e.Region),
			int32(e.MatchupIndex),
			string(e.View),
			e.Timestamp,
		)
		if err != nil {
			s.logger.Warnw("Failed to append event to batch", "error", err, "kind", e.Kind)
			continue
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// LogSink logs each event; used when no analytics store is configured
type LogSink struct {
	logger *zap.SugaredLogger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Sugar()}
}

func (s *LogSink) WriteBatch(ctx context.Context, events []models.ViewEvent) error {
	for _, e := range events {
		s.logger.Infow("View event",
			"view", e.ViewID,
			"kind", e.Kind,
			"region", e.Region,
			"matchup", e.MatchupIndex,
			"tab", e.View,
		)
	}
	return nil
}
