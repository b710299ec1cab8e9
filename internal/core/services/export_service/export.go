package export_service

import (
	"context"
	"fmt"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/services/roster_service"
)

// ExportService re-reads the store at export time and hands the resolved
// views to the renderers. Exports never write.
type ExportService struct {
	roster   *roster_service.RosterService
	report   out.ReportRendererPort
	workbook out.WorkbookRendererPort
	logger   out.LoggerPort
}

func NewExportService(
	roster *roster_service.RosterService,
	report out.ReportRendererPort,
	workbook out.WorkbookRendererPort,
	logger out.LoggerPort,
) *ExportService {
	return &ExportService{
		roster:   roster,
		report:   report,
		workbook: workbook,
		logger:   logger.WithModule("ExportService"),
	}
}

func (s *ExportService) ExportMonthPDF(ctx context.Context, sess domain.Session, year int, month time.Month) ([]byte, error) {
	s.logger.Info("export.pdf.started", out.LogFields{
		"sessionId": sess.ID,
		"year":      year,
		"month":     int(month),
	})

	view, err := s.roster.MonthView(ctx, sess, year, month)
	if err != nil {
		return nil, err
	}

	data, err := s.report.RenderMonth(ctx, view)
	if err != nil {
		s.logger.Error("export.pdf.render_failed", out.LogFields{
			"sessionId": sess.ID,
			"month":     int(month),
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("export.pdf.render_failed: %w", err)
	}

	s.logger.Info("export.pdf.done", out.LogFields{
		"sessionId": sess.ID,
		"month":     int(month),
		"bytes":     len(data),
	})
	return data, nil
}

func (s *ExportService) ExportYearWorkbook(ctx context.Context, sess domain.Session, year int) ([]byte, error) {
	s.logger.Info("export.workbook.started", out.LogFields{
		"sessionId": sess.ID,
		"year":      year,
	})

	view, err := s.roster.YearView(ctx, sess, year)
	if err != nil {
		return nil, err
	}

	data, err := s.workbook.RenderYear(ctx, view)
	if err != nil {
		s.logger.Error("export.workbook.render_failed", out.LogFields{
			"sessionId": sess.ID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("export.workbook.render_failed: %w", err)
	}

	s.logger.Info("export.workbook.done", out.LogFields{
		"sessionId": sess.ID,
		"bytes":     len(data),
	})
	return data, nil
}
