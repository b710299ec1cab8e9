package xlsxbook

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/out"
)

// rosterSheetName is the hidden reference sheet listing the celebrant
// roster. The month sheets' dropdowns point at it.
const rosterSheetName = "Celebrantes"

// WorkbookRenderer produces the full-year workbook: one sheet per month plus
// the hidden roster sheet. Celebrant cells carry a dropdown bound to the
// roster; the constraint is advisory only, nothing validates stored values
// against it.
type WorkbookRenderer struct {
	logger out.LoggerPort
}

type sheetStyles struct {
	title     int
	header    int
	highlight int
	data      int
}

func NewWorkbookRenderer(logger out.LoggerPort) *WorkbookRenderer {
	return &WorkbookRenderer{logger: logger}
}

func (r *WorkbookRenderer) RenderYear(ctx context.Context, view domain.YearView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, fmt.Errorf("workbook styles: %w", err)
	}

	for _, month := range view.Months {
		if err := r.renderMonthSheet(f, styles, month, len(view.Celebrants)); err != nil {
			return nil, fmt.Errorf("render sheet %s: %w", domain.MonthName(month.Month), err)
		}
	}

	if err := r.renderRosterSheet(f, view.Celebrants); err != nil {
		return nil, fmt.Errorf("render roster sheet: %w", err)
	}

	// Drop the default sheet and open the workbook on January.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	if index, err := f.GetSheetIndex(domain.MonthName(1)); err == nil && index >= 0 {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("workbook output: %w", err)
	}

	r.logger.Debug("xlsxbook.render.done", out.LogFields{
		"year":  view.Year,
		"bytes": buf.Len(),
	})
	return buf.Bytes(), nil
}

func (r *WorkbookRenderer) renderRosterSheet(f *excelize.File, celebrants []string) error {
	if _, err := f.NewSheet(rosterSheetName); err != nil {
		return err
	}
	for i, celebrant := range celebrants {
		cell := fmt.Sprintf("A%d", i+1)
		_ = f.SetCellValue(rosterSheetName, cell, celebrant)
	}
	return f.SetSheetVisible(rosterSheetName, false)
}

func (r *WorkbookRenderer) renderMonthSheet(f *excelize.File, styles sheetStyles, month domain.MonthView, rosterSize int) error {
	sheet := domain.MonthName(month.Month)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 22)
	_ = f.SetColWidth(sheet, "C", "C", 8)
	_ = f.SetColWidth(sheet, "D", "D", 26)
	_ = f.SetColWidth(sheet, "E", "E", 34)

	// Merged title row and the column headers.
	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return err
	}
	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Escala de Missas - %s %d", sheet, month.Year))
	_ = f.SetCellStyle(sheet, "A1", "E1", styles.title)

	headers := []string{"Data", "Comunidade", "Hora", "Celebrante", "Notas"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheet, cell, header)
	}
	_ = f.SetCellStyle(sheet, "A2", "E2", styles.header)

	row := 3
	for _, sunday := range month.Sundays {
		next, err := r.renderSunday(f, styles, sheet, sunday, row, rosterSize)
		if err != nil {
			return err
		}
		row = next + 1 // one blank separator row per Sunday
	}
	return nil
}

// renderSunday writes one Sunday block starting at startRow and returns the
// first row after it.
func (r *WorkbookRenderer) renderSunday(f *excelize.File, styles sheetStyles, sheet string, sunday domain.SundayView, startRow, rosterSize int) (int, error) {
	row := startRow

	// Highlighted title row, only when a title resolved to something.
	if sunday.Title != "" {
		if err := f.MergeCell(sheet, cell("A", row), cell("E", row)); err != nil {
			return 0, err
		}
		_ = f.SetCellValue(sheet, cell("A", row), sunday.Title)
		_ = f.SetCellStyle(sheet, cell("A", row), cell("E", row), styles.highlight)
		row++
	}

	firstSlotRow := row
	lastSlotRow := row + len(sunday.Slots) - 1

	// Date cell spans every slot row of the Sunday.
	_ = f.SetCellValue(sheet, cell("A", firstSlotRow), sunday.Date.Format(domain.KeyDateLayout))
	if lastSlotRow > firstSlotRow {
		if err := f.MergeCell(sheet, cell("A", firstSlotRow), cell("A", lastSlotRow)); err != nil {
			return 0, err
		}
	}

	for _, group := range groupByCommunity(sunday.Slots) {
		_ = f.SetCellValue(sheet, cell("B", row), group[0].Community)
		if len(group) > 1 {
			if err := f.MergeCell(sheet, cell("B", row), cell("B", row+len(group)-1)); err != nil {
				return 0, err
			}
		}
		for _, slot := range group {
			_ = f.SetCellValue(sheet, cell("C", row), slot.Time)
			if !slot.Placeholder {
				_ = f.SetCellValue(sheet, cell("D", row), slot.Celebrant)
			}
			_ = f.SetCellValue(sheet, cell("E", row), slot.Note)
			row++
		}
	}

	_ = f.SetCellStyle(sheet, cell("A", firstSlotRow), cell("E", lastSlotRow), styles.data)

	if rosterSize > 0 {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("D%d:D%d", firstSlotRow, lastSlotRow)
		dv.SetSqrefDropList(fmt.Sprintf("%s!$A$1:$A$%d", rosterSheetName, rosterSize))
		if err := f.AddDataValidation(sheet, dv); err != nil {
			return 0, err
		}
	}

	return row, nil
}

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

func cell(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return sheetStyles{}, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E6E6E6"}},
		Border:    boxBorder(),
	})
	if err != nil {
		return sheetStyles{}, err
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Italic: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFF2CC"}},
		Border:    boxBorder(),
	})
	if err != nil {
		return sheetStyles{}, err
	}

	data, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return sheetStyles{}, err
	}

	return sheetStyles{title: title, header: header, highlight: highlight, data: data}, nil
}

func boxBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#999999", Style: 1},
		{Type: "right", Color: "#999999", Style: 1},
		{Type: "top", Color: "#999999", Style: 1},
		{Type: "bottom", Color: "#999999", Style: 1},
	}
}
