package xlsxbook

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pastoraldigital/mass-schedule-manager/internal/adapters/out/logger"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

func buildYearView() domain.YearView {
	catalog := domain.DefaultCatalog()
	view := domain.YearView{
		Year:       2026,
		Celebrants: domain.DefaultCelebrants(),
	}
	for month := time.January; month <= time.December; month++ {
		monthView := domain.MonthView{Year: 2026, Month: month}
		for _, date := range domain.SundaysInMonth(2026, month) {
			sunday := domain.SundayView{Date: date}
			if month == time.January && date.Day() == 11 {
				sunday.Title = "Batismo do Senhor"
			}
			for _, community := range catalog.Communities {
				for _, timeOfDay := range community.Times {
					slot := domain.SlotView{
						Date:        date,
						Community:   community.Name,
						Time:        timeOfDay,
						Key:         domain.SlotKey(date, community.Name, timeOfDay),
						Placeholder: true,
					}
					if community.Name == "Santa Monica" && timeOfDay == "07:00" && date.Day() == 4 && month == time.January {
						slot.Celebrant = "Pe. Pasquale"
						slot.Placeholder = false
						slot.Note = "missa solene"
					}
					sunday.Slots = append(sunday.Slots, slot)
				}
			}
			monthView.Sundays = append(monthView.Sundays, sunday)
		}
		view.Months = append(view.Months, monthView)
	}
	return view
}

func TestRenderYearWorkbookShape(t *testing.T) {
	renderer := NewWorkbookRenderer(logger.NewNopLogger())
	data, err := renderer.RenderYear(context.Background(), buildYearView())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// One sheet per month plus the hidden roster sheet, no leftover default.
	sheets := f.GetSheetList()
	require.Len(t, sheets, 13)
	assert.NotContains(t, sheets, "Sheet1")
	for month := time.January; month <= time.December; month++ {
		assert.Contains(t, sheets, domain.MonthName(month))
	}

	visible, err := f.GetSheetVisible(rosterSheetName)
	require.NoError(t, err)
	assert.False(t, visible, "roster sheet must be hidden")

	roster, err := f.GetCellValue(rosterSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, domain.CelebrantUnset, roster)
}

func TestRenderYearJanuarySheetContent(t *testing.T) {
	renderer := NewWorkbookRenderer(logger.NewNopLogger())
	data, err := renderer.RenderYear(context.Background(), buildYearView())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Janeiro", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Escala de Missas - Janeiro 2026", title)

	header, err := f.GetCellValue("Janeiro", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Celebrante", header)

	// First Sunday (Jan 4, no title row): date block starts at row 3.
	dateCell, err := f.GetCellValue("Janeiro", "A3")
	require.NoError(t, err)
	assert.Equal(t, "04/01/2026", dateCell)

	community, err := f.GetCellValue("Janeiro", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Santa Monica", community)

	celebrant, err := f.GetCellValue("Janeiro", "D3")
	require.NoError(t, err)
	assert.Equal(t, "Pe. Pasquale", celebrant)

	note, err := f.GetCellValue("Janeiro", "E3")
	require.NoError(t, err)
	assert.Equal(t, "missa solene", note)

	// Unset celebrant cells stay blank; the dropdown is advisory only.
	blank, err := f.GetCellValue("Janeiro", "D4")
	require.NoError(t, err)
	assert.Empty(t, blank)

	// 13 slot rows (rows 3..15), then one blank separator; Jan 11 carries a
	// highlighted title row before its date block.
	sep, err := f.GetCellValue("Janeiro", "A16")
	require.NoError(t, err)
	assert.Empty(t, sep)

	highlight, err := f.GetCellValue("Janeiro", "A17")
	require.NoError(t, err)
	assert.Equal(t, "Batismo do Senhor", highlight)

	secondDate, err := f.GetCellValue("Janeiro", "A18")
	require.NoError(t, err)
	assert.Equal(t, "11/01/2026", secondDate)

	validations, err := f.GetDataValidations("Janeiro")
	require.NoError(t, err)
	assert.Len(t, validations, len(domain.SundaysInMonth(2026, time.January)),
		"one celebrant dropdown range per Sunday block")
}
