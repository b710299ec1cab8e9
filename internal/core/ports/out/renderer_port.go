package out

import (
	"context"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

// ReportRendererPort produces the printable monthly report. Renderers are
// read only: they work from a resolved view and never touch the store.
type ReportRendererPort interface {
	RenderMonth(ctx context.Context, view domain.MonthView) ([]byte, error)
}

// WorkbookRendererPort produces the full-year spreadsheet workbook.
type WorkbookRendererPort interface {
	RenderYear(ctx context.Context, view domain.YearView) ([]byte, error)
}
