package in

import (
	"context"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

type RosterUseCase interface {
	// Resolved month view for the editing surface.
	MonthView(ctx context.Context, sess domain.Session, year int, month time.Month) (domain.MonthView, error)

	// Full-tuple upsert of one slot's assignment. Partial field updates are
	// not supported on purpose: the caller always sends celebrant and note
	// together so a stale widget can never clobber half a row.
	UpsertAssignment(ctx context.Context, sess domain.Session, key string, assignment domain.Assignment) error

	// Upsert of one Sunday's custom title override.
	UpsertAnnotation(ctx context.Context, sess domain.Session, date time.Time, customTitle string) error

	// Celebrant roster for the selectors. Empty in free-text mode, where the
	// advisory constraint is dropped entirely.
	Celebrants(sess domain.Session) []string
}
