package out

import (
	"context"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

// StorePort is the backing key-row table. The table is the single source of
// truth: there is no per-row update, every mutation goes through a full
// ReadAll/WriteAll cycle. Two concurrent writers can therefore lose one
// writer's change (last full write wins); this weak consistency is an
// accepted property of the human-paced editing workload.
type StorePort interface {
	// ReadAll returns every row of the table. Fails with
	// domain.ErrStoreUnavailable when the backing service is unreachable.
	ReadAll(ctx context.Context) ([]domain.Row, error)

	// WriteAll replaces the whole table content.
	WriteAll(ctx context.Context, rows []domain.Row) error
}
