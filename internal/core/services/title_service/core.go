package title_service

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// TitleService harvests per-Sunday liturgical titles from the static source
// document. Extraction is best effort and never fails: a missing or
// unreadable document yields an empty map plus a diagnostic report. The
// result is cached for the process lifetime, keyed by document source.
type TitleService struct {
	docPort   out.DocumentTextPort
	cachePort out.CachePort
	year      int
	logger    out.LoggerPort
}

func NewTitleService(
	docPort out.DocumentTextPort,
	cachePort out.CachePort,
	year int,
	logger out.LoggerPort,
) *TitleService {
	return &TitleService{
		docPort:   docPort,
		cachePort: cachePort,
		year:      year,
		logger:    logger.WithModule("TitleService"),
	}
}

// Titles returns the extracted date -> title map, discarding diagnostics.
func (s *TitleService) Titles(ctx context.Context) map[time.Time]string {
	titles, _ := s.TitlesWithReport(ctx)
	return titles
}

// TitlesWithReport returns the extracted map together with the run report,
// so the HTTP layer can surface diagnostics without extraction ever turning
// into an error.
func (s *TitleService) TitlesWithReport(ctx context.Context) (map[time.Time]string, domain.ExtractionReport) {
	source := s.docPort.Source()
	report := domain.ExtractionReport{Source: source}

	if s.cachePort != nil {
		if titles, ok := s.cachePort.GetTitles(ctx, source); ok {
			report.Headings = len(titles)
			report.AddNote("served from cache")
			return titles, report
		}
	}

	report.Start()
	pages, err := s.docPort.PageLines(ctx)
	if err != nil {
		titles := make(map[time.Time]string)
		if errors.Is(err, fs.ErrNotExist) {
			report.AddNote("titles document absent")
			s.logger.Debug("titles.extract.document_absent", out.LogFields{
				"source": source,
			})
		} else {
			report.AddNote("titles document unreadable: " + err.Error())
			s.logger.Warn("titles.extract.document_unreadable", out.LogFields{
				"source": source,
				"error":  err.Error(),
			})
		}
		// Cache the empty result too: the document will not appear or heal
		// while the process lives.
		s.store(ctx, source, titles)
		return titles, report
	}

	titles := ExtractTitles(s.year, pages, &report)
	report.Elapse()

	s.logger.Info("titles.extract.done", out.LogFields{
		"source":   source,
		"pages":    report.Pages,
		"headings": report.Headings,
		"rejected": report.Rejected,
		"timing":   report.Timing,
	})

	s.store(ctx, source, titles)
	return titles, report
}

func (s *TitleService) store(ctx context.Context, source string, titles map[time.Time]string) {
	if s.cachePort != nil {
		s.cachePort.StoreTitles(ctx, source, titles)
	}
}
