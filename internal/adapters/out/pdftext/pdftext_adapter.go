package pdftext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// PdfTextAdapter reads the liturgical titles document and exposes its text
// line by line, page by page. A missing file surfaces as the os open error
// (wrapping fs.ErrNotExist); the title service downgrades any error here to
// an empty title map.
type PdfTextAdapter struct {
	path   string
	logger out.LoggerPort
}

func NewPdfTextAdapter(path string, logger out.LoggerPort) *PdfTextAdapter {
	return &PdfTextAdapter{
		path:   path,
		logger: logger,
	}
}

func (a *PdfTextAdapter) Source() string {
	return a.path
}

func (a *PdfTextAdapter) PageLines(ctx context.Context) (pages [][]string, err error) {
	if _, err := os.Stat(a.path); err != nil {
		return nil, err
	}

	// The pdf package panics on some malformed documents; extraction must
	// degrade instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf text extraction panicked: %v", r)
		}
	}()

	file, reader, err := pdf.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", a.path, err)
	}
	defer file.Close()

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", pageNum, err)
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			lines = append(lines, line.String())
		}
		pages = append(pages, lines)
	}

	a.logger.Debug("pdftext.read.done", out.LogFields{
		"source": a.path,
		"pages":  len(pages),
	})
	return pages, nil
}
