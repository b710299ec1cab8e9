package memstore

import (
	"context"
	"sync"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// MemStoreAdapter is an in-process StorePort for local runs and tests. It
// keeps the same full-replace semantics as the remote table: WriteAll swaps
// the whole content, so the documented lost-update behavior reproduces here
// too.
type MemStoreAdapter struct {
	mu     sync.Mutex
	rows   []domain.Row
	logger out.LoggerPort
}

func NewMemStoreAdapter(logger out.LoggerPort) *MemStoreAdapter {
	return &MemStoreAdapter{logger: logger}
}

func (a *MemStoreAdapter) ReadAll(ctx context.Context) ([]domain.Row, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rows := make([]domain.Row, len(a.rows))
	copy(rows, a.rows)
	return rows, nil
}

func (a *MemStoreAdapter) WriteAll(ctx context.Context, rows []domain.Row) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.rows = make([]domain.Row, len(rows))
	copy(a.rows, rows)
	return nil
}
