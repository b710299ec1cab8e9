package sheetstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"nan", ""},
		{"NaN", ""},
		{"None", ""},
		{"none", ""},
		{"null", ""},
		{"", ""},
		{"   ", ""},
		{" Pe. Márcio ", "Pe. Márcio"},
		{"Nenhum", "Nenhum"}, // only exact sentinels are nulls
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeCell(tt.in), "input %q", tt.in)
	}
}

func TestGridToRowsNormalizesAndSkipsKeyless(t *testing.T) {
	rows := gridToRows([][]string{
		{"key", "celebrant", "note", "customTitle"},
		{"04/01/2026_Santa Monica_07:00", "nan", "None", ""},
		{"titulo_04/01/2026", "", "", "Batismo do Senhor"},
		{"", "Pe. Stefano", "linha órfã", ""},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, domain.Row{Key: "04/01/2026_Santa Monica_07:00"}, rows[0])
	assert.Equal(t, domain.Row{Key: "titulo_04/01/2026", CustomTitle: "Batismo do Senhor"}, rows[1])
}

func TestGridToRowsHonorsHeaderOrder(t *testing.T) {
	// Columns may appear in any order; the header decides.
	rows := gridToRows([][]string{
		{"note", "key", "customTitle", "celebrant"},
		{"avisar sacristão", "04/01/2026_São Miguel_08:45", "", "Pe. Pinto"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "04/01/2026_São Miguel_08:45", rows[0].Key)
	assert.Equal(t, "Pe. Pinto", rows[0].Celebrant)
	assert.Equal(t, "avisar sacristão", rows[0].Note)
}

func TestGridToRowsToleratesShortRecords(t *testing.T) {
	rows := gridToRows([][]string{
		{"key", "celebrant", "note", "customTitle"},
		{"04/01/2026_Santa Isabel_07:00", "Pe. Roberto"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Pe. Roberto", rows[0].Celebrant)
	assert.Empty(t, rows[0].Note)
	assert.Empty(t, rows[0].CustomTitle)
}

func TestRowsToGridRoundTrip(t *testing.T) {
	original := []domain.Row{
		{Key: "04/01/2026_Santa Monica_07:00", Celebrant: "Pe. Pasquale", Note: "", CustomTitle: ""},
		{Key: "titulo_04/01/2026", CustomTitle: "Batismo do Senhor"},
	}

	grid := rowsToGrid(original)
	require.Equal(t, expectedColumns, grid[0])
	for _, record := range grid[1:] {
		for _, cell := range record {
			assert.NotContains(t, []string{"nan", "None", "null"}, cell,
				"textual null sentinels must never be written")
		}
	}

	assert.Equal(t, original, gridToRows(grid))
}

func TestProvisionCreatesAndExtendsHeader(t *testing.T) {
	adapter := &SheetStoreAdapter{table: "missas"}

	// Empty table: header gets created.
	grid, changed := adapter.provision(nil)
	assert.True(t, changed)
	require.Len(t, grid, 1)
	assert.Equal(t, expectedColumns, grid[0])

	// Partial header: missing columns appended, records padded.
	grid, changed = adapter.provision([][]string{
		{"key", "celebrant"},
		{"04/01/2026_Santa Monica_07:00", "Pe. Pasquale"},
	})
	assert.True(t, changed)
	assert.Equal(t, []string{"key", "celebrant", "note", "customTitle"}, grid[0])
	assert.Equal(t, []string{"04/01/2026_Santa Monica_07:00", "Pe. Pasquale", "", ""}, grid[1])

	// Complete header: untouched.
	complete := [][]string{append([]string(nil), expectedColumns...)}
	grid, changed = adapter.provision(complete)
	assert.False(t, changed)
	assert.Equal(t, complete, grid)
}
