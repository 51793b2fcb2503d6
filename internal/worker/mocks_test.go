package worker

import (
	"context"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// MockSink records every batch it receives
type MockSink struct {
	mu      sync.Mutex
	Batches [][]models.ViewEvent
	Err     error
}

func (m *MockSink) WriteBatch(ctx context.Context, events []models.ViewEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Batches = append(m.Batches, events)
	return m.Err
}

func (m *MockSink) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.Batches {
		n += len(b)
	}
	return n
}

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn
	Batch     *MockBatch
	LastQuery string
	PrepErr   error
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	m.LastQuery = query
	if m.PrepErr != nil {
		return nil, m.PrepErr
	}
	return m.Batch, nil
}

// MockBatch implements driver.Batch for testing
type MockBatch struct {
	driver.Batch
	Appended [][]any
	Sent     bool
	SendErr  error
}

func (b *MockBatch) Append(v ...any) error {
	b.Appended = append(b.Appended, v)
	return nil
}

func (b *MockBatch) Send() error {
	b.Sent = true
	return b.SendErr
}
