package in

import (
	"context"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

type ExportUseCase interface {
	// Printable report for one month.
	ExportMonthPDF(ctx context.Context, sess domain.Session, year int, month time.Month) ([]byte, error)

	// Spreadsheet workbook covering the whole year.
	ExportYearWorkbook(ctx context.Context, sess domain.Session, year int) ([]byte, error)
}
