package roster_service

import (
	"context"
	"fmt"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// rowIndex is one table snapshot, keyed for resolution. A view is always
// built from a single snapshot so its slots and titles cannot disagree.
type rowIndex map[string]domain.Row

func indexRows(rows []domain.Row) rowIndex {
	idx := make(rowIndex, len(rows))
	for _, row := range rows {
		idx[row.Key] = row
	}
	return idx
}

func (idx rowIndex) celebrant(key string) (string, bool) {
	row, ok := idx[key]
	if !ok || row.Celebrant == "" {
		return "", true
	}
	return row.Celebrant, false
}

func (idx rowIndex) note(key string) string {
	return idx[key].Note
}

func (idx rowIndex) title(date time.Time, extracted map[time.Time]string) string {
	if row, ok := idx[domain.AnnotationKey(date)]; ok && row.CustomTitle != "" {
		return row.CustomTitle
	}
	return extracted[date]
}

// ResolveCelebrant returns the stored celebrant for a slot key, or
// ("", true) when the slot has no assignment yet.
func (s *RosterService) ResolveCelebrant(ctx context.Context, key string) (string, bool, error) {
	rows, err := s.storePort.ReadAll(ctx)
	if err != nil {
		return "", false, fmt.Errorf("roster.resolve.read_failed: %w", err)
	}
	celebrant, placeholder := indexRows(rows).celebrant(key)
	return celebrant, placeholder, nil
}

// ResolveNote returns the stored note for a slot key, empty when absent.
func (s *RosterService) ResolveNote(ctx context.Context, key string) (string, error) {
	rows, err := s.storePort.ReadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("roster.resolve.read_failed: %w", err)
	}
	return indexRows(rows).note(key), nil
}

// ResolveTitle returns the liturgical title of one Sunday: the stored
// override when present, else the extracted title, else empty.
func (s *RosterService) ResolveTitle(ctx context.Context, date time.Time) (string, error) {
	rows, err := s.storePort.ReadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("roster.resolve.read_failed: %w", err)
	}
	return indexRows(rows).title(date, s.titles.Titles(ctx)), nil
}

// MonthView builds the resolved view of one month from a single table read.
func (s *RosterService) MonthView(ctx context.Context, sess domain.Session, year int, month time.Month) (domain.MonthView, error) {
	if year != s.year {
		return domain.MonthView{}, fmt.Errorf("%w: %d", domain.ErrUnknownYear, year)
	}

	rows, err := s.storePort.ReadAll(ctx)
	if err != nil {
		s.logger.Error("roster.month_view.read_failed", out.LogFields{
			"sessionId": sess.ID,
			"month":     int(month),
			"error":     err.Error(),
		})
		return domain.MonthView{}, fmt.Errorf("roster.month_view.read_failed: %w", err)
	}

	view := s.buildMonthView(indexRows(rows), s.titles.Titles(ctx), month)

	s.logger.Debug("roster.month_view.built", out.LogFields{
		"sessionId": sess.ID,
		"month":     int(month),
		"sundays":   len(view.Sundays),
	})
	return view, nil
}

// YearView builds the resolved view of all twelve months from a single table
// read, for the workbook export.
func (s *RosterService) YearView(ctx context.Context, sess domain.Session, year int) (domain.YearView, error) {
	if year != s.year {
		return domain.YearView{}, fmt.Errorf("%w: %d", domain.ErrUnknownYear, year)
	}

	rows, err := s.storePort.ReadAll(ctx)
	if err != nil {
		s.logger.Error("roster.year_view.read_failed", out.LogFields{
			"sessionId": sess.ID,
			"error":     err.Error(),
		})
		return domain.YearView{}, fmt.Errorf("roster.year_view.read_failed: %w", err)
	}

	idx := indexRows(rows)
	titles := s.titles.Titles(ctx)

	view := domain.YearView{
		Year:       s.year,
		Months:     make([]domain.MonthView, 0, 12),
		Celebrants: s.celebrants,
	}
	for month := time.January; month <= time.December; month++ {
		view.Months = append(view.Months, s.buildMonthView(idx, titles, month))
	}
	return view, nil
}

func (s *RosterService) buildMonthView(idx rowIndex, titles map[time.Time]string, month time.Month) domain.MonthView {
	view := domain.MonthView{Year: s.year, Month: month}

	for _, sunday := range domain.SundaysInMonth(s.year, month) {
		sundayView := domain.SundayView{
			Date:  sunday,
			Title: idx.title(sunday, titles),
			Slots: make([]domain.SlotView, 0, s.catalog.SlotsPerSunday()),
		}
		for _, community := range s.catalog.Communities {
			for _, timeOfDay := range community.Times {
				key := domain.SlotKey(sunday, community.Name, timeOfDay)
				celebrant, placeholder := idx.celebrant(key)
				sundayView.Slots = append(sundayView.Slots, domain.SlotView{
					Date:        sunday,
					Community:   community.Name,
					Time:        timeOfDay,
					Key:         key,
					Celebrant:   celebrant,
					Placeholder: placeholder,
					Note:        idx.note(key),
				})
			}
		}
		view.Sundays = append(view.Sundays, sundayView)
	}
	return view
}
