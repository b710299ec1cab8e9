package roster_service

import (
	"context"
	"fmt"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// TitleSource yields the extracted per-Sunday titles used as fallback when no
// custom title is stored. Implemented by the title service.
type TitleSource interface {
	Titles(ctx context.Context) map[time.Time]string
}

// RosterService owns the assignment store semantics: key validation, the
// full-table read-modify-write upsert, and the override > extracted > empty
// resolution every surface shares.
//
// Upserts are not atomic against concurrent writers. Two sessions that read
// the same table snapshot and both write will keep only the second writer's
// change. Accepted for this workload; see the race test.
type RosterService struct {
	storePort  out.StorePort
	titles     TitleSource
	catalog    domain.Catalog
	celebrants []string
	year       int
	logger     out.LoggerPort
}

func NewRosterService(
	storePort out.StorePort,
	titles TitleSource,
	catalog domain.Catalog,
	celebrants []string,
	year int,
	logger out.LoggerPort,
) *RosterService {
	return &RosterService{
		storePort:  storePort,
		titles:     titles,
		catalog:    catalog,
		celebrants: celebrants,
		year:       year,
		logger:     logger.WithModule("RosterService"),
	}
}

func (s *RosterService) Year() int { return s.year }

func (s *RosterService) Catalog() domain.Catalog { return s.catalog }

// Celebrants returns the advisory roster for selectors. In free-text mode the
// constraint is dropped entirely, so there is no list to offer.
func (s *RosterService) Celebrants(sess domain.Session) []string {
	if sess.FreeTextCelebrant {
		return nil
	}
	roster := make([]string, len(s.celebrants))
	copy(roster, s.celebrants)
	return roster
}

// UpsertAssignment stores the full (celebrant, note) tuple for one slot key.
// The unset sentinel is normalized to empty before it reaches the table. The
// stored customTitle of the row, if any, is preserved untouched.
func (s *RosterService) UpsertAssignment(ctx context.Context, sess domain.Session, key string, assignment domain.Assignment) error {
	if err := s.validateSlotKey(key); err != nil {
		return err
	}

	if assignment.Celebrant == domain.CelebrantUnset {
		assignment.Celebrant = ""
	}

	s.logger.Info("roster.assignment.upsert", out.LogFields{
		"sessionId": sess.ID,
		"key":       key,
	})

	return s.upsert(ctx, key, func(row *domain.Row) {
		row.Celebrant = assignment.Celebrant
		row.Note = assignment.Note
	})
}

// UpsertAnnotation stores the custom title override of one Sunday. Celebrant
// and note of the row are untouched (annotation rows never carry them, but
// the guarantee holds regardless).
func (s *RosterService) UpsertAnnotation(ctx context.Context, sess domain.Session, date time.Time, customTitle string) error {
	if !domain.IsSundayOf(date, s.year) {
		return fmt.Errorf("%w: %s is not a Sunday of %d", domain.ErrUnknownSlot, date.Format(domain.KeyDateLayout), s.year)
	}

	key := domain.AnnotationKey(date)
	s.logger.Info("roster.annotation.upsert", out.LogFields{
		"sessionId": sess.ID,
		"key":       key,
	})

	return s.upsert(ctx, key, func(row *domain.Row) {
		row.CustomTitle = customTitle
	})
}

// upsert is the single mutation primitive: read the whole table, mutate one
// row (creating it with empty fields when absent), write the whole table
// back. Last full write wins.
func (s *RosterService) upsert(ctx context.Context, key string, mutate func(*domain.Row)) error {
	rows, err := s.storePort.ReadAll(ctx)
	if err != nil {
		s.logger.Error("roster.upsert.read_failed", out.LogFields{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("roster.upsert.read_failed: %w", err)
	}

	found := false
	for i := range rows {
		if rows[i].Key == key {
			mutate(&rows[i])
			found = true
			break
		}
	}
	if !found {
		row := domain.Row{Key: key}
		mutate(&row)
		rows = append(rows, row)
	}

	if err := s.storePort.WriteAll(ctx, rows); err != nil {
		s.logger.Error("roster.upsert.write_failed", out.LogFields{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("roster.upsert.write_failed: %w", err)
	}

	return nil
}

// validateSlotKey checks that the key parses and addresses a slot the catalog
// and calendar actually produce.
func (s *RosterService) validateSlotKey(key string) error {
	date, community, timeOfDay, err := domain.ParseSlotKey(key)
	if err != nil {
		return err
	}
	if !domain.IsSundayOf(date, s.year) {
		return fmt.Errorf("%w: %s is not a Sunday of %d", domain.ErrUnknownSlot, date.Format(domain.KeyDateLayout), s.year)
	}
	for _, c := range s.catalog.Communities {
		if c.Name != community {
			continue
		}
		for _, t := range c.Times {
			if t == timeOfDay {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownSlot, key)
}
