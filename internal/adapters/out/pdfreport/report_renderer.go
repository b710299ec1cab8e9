package pdfreport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// Fixed layout constants, in millimeters. The four column widths sum to the
// A4 content width (190mm with 10mm margins).
const (
	colCommunity = 45.0
	colTime      = 15.0
	colCelebrant = 55.0
	colNotes     = 75.0
	contentWidth = colCommunity + colTime + colCelebrant + colNotes

	rowHeight = 7.0

	// A new page starts every sundaysPerPage Sundays, with the month title
	// reprinted on top.
	sundaysPerPage = 2
)

// ReportRenderer draws the printable monthly roster. Output uses the core
// Latin-1 fonts; characters outside that set are substituted by the unicode
// translator, never rejected.
type ReportRenderer struct {
	logger out.LoggerPort
}

func NewReportRenderer(logger out.LoggerPort) *ReportRenderer {
	return &ReportRenderer{logger: logger}
}

func (r *ReportRenderer) RenderMonth(ctx context.Context, view domain.MonthView) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pages := paginate(view.Sundays)
	if len(pages) == 0 {
		// Month without Sundays cannot happen, but an empty document would
		// be invalid; emit the title page anyway.
		pages = [][]domain.SundayView{nil}
	}

	for _, pageSundays := range pages {
		pdf.AddPage()
		r.writeMonthTitle(pdf, tr, view)
		for _, sunday := range pageSundays {
			r.writeSunday(pdf, tr, sunday)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	r.logger.Debug("pdfreport.render.done", out.LogFields{
		"month":   int(view.Month),
		"sundays": len(view.Sundays),
		"pages":   len(pages),
		"bytes":   buf.Len(),
	})
	return buf.Bytes(), nil
}

// paginate splits the month's Sundays into fixed-size page groups.
func paginate(sundays []domain.SundayView) [][]domain.SundayView {
	var pages [][]domain.SundayView
	for start := 0; start < len(sundays); start += sundaysPerPage {
		end := start + sundaysPerPage
		if end > len(sundays) {
			end = len(sundays)
		}
		pages = append(pages, sundays[start:end])
	}
	return pages
}

func (r *ReportRenderer) writeMonthTitle(pdf *fpdf.Fpdf, tr func(string) string, view domain.MonthView) {
	pdf.SetFont("Arial", "B", 16)
	title := fmt.Sprintf("Escala de Missas - %s %d", domain.MonthName(view.Month), view.Year)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func (r *ReportRenderer) writeSunday(pdf *fpdf.Fpdf, tr func(string) string, sunday domain.SundayView) {
	// Full-width Sunday header carrying the resolved liturgical title.
	header := "Domingo " + sunday.Date.Format(domain.KeyDateLayout)
	if sunday.Title != "" {
		header += " - " + sunday.Title
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(contentWidth, rowHeight, tr(header), "1", 1, "L", true, 0, "")

	// Column header row.
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(colCommunity, rowHeight, "Comunidade", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colTime, rowHeight, "Hora", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colCelebrant, rowHeight, "Celebrante", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colNotes, rowHeight, "Notas", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, group := range groupByCommunity(sunday.Slots) {
		r.writeCommunity(pdf, tr, group)
	}

	// Thin gray separator before the next Sunday block.
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(contentWidth, 2, "", "1", 1, "C", true, 0, "")
	pdf.Ln(2)
}

// writeCommunity draws one community block. A single-slot community is one
// plain row. A multi-slot community gets one tall merged cell for its name:
// the cursor position is recorded before drawing it, the first time row
// follows immediately, and each further time row repositions the cursor to
// the community cell's right edge.
func (r *ReportRenderer) writeCommunity(pdf *fpdf.Fpdf, tr func(string) string, slots []domain.SlotView) {
	name := slots[0].Community

	if len(slots) == 1 {
		pdf.CellFormat(colCommunity, rowHeight, tr(name), "1", 0, "L", false, 0, "")
		r.writeSlotCells(pdf, tr, slots[0])
		return
	}

	x, y := pdf.GetXY()
	pdf.CellFormat(colCommunity, rowHeight*float64(len(slots)), tr(name), "1", 0, "L", false, 0, "")
	r.writeSlotCells(pdf, tr, slots[0])
	for i, slot := range slots[1:] {
		pdf.SetXY(x+colCommunity, y+rowHeight*float64(i+1))
		r.writeSlotCells(pdf, tr, slot)
	}
}

func (r *ReportRenderer) writeSlotCells(pdf *fpdf.Fpdf, tr func(string) string, slot domain.SlotView) {
	celebrant := slot.Celebrant
	if slot.Placeholder {
		celebrant = domain.CelebrantPlaceholder
	}
	pdf.CellFormat(colTime, rowHeight, slot.Time, "1", 0, "C", false, 0, "")
	pdf.CellFormat(colCelebrant, rowHeight, tr(celebrant), "1", 0, "L", false, 0, "")
	pdf.CellFormat(colNotes, rowHeight, tr(slot.Note), "1", 1, "L", false, 0, "")
}

// groupByCommunity splits a Sunday's slot rows into consecutive runs of the
// same community, preserving catalog order.
func groupByCommunity(slots []domain.SlotView) [][]domain.SlotView {
	var groups [][]domain.SlotView
	for i := 0; i < len(slots); {
		j := i + 1
		for j < len(slots) && slots[j].Community == slots[i].Community {
			j++
		}
		groups = append(groups, slots[i:j])
		i = j
	}
	return groups
}
