package sheetstore

import (
	"strings"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

// expectedColumns is the table schema, in write order. The backing service
// is untyped text; column identity lives in the header row.
var expectedColumns = []string{"key", "celebrant", "note", "customTitle"}

// normalizeCell maps the textual null sentinels the backing service may hand
// back ("nan", "None", bare whitespace) to the empty string. Sentinel
// handling lives only here; domain rows never see them.
func normalizeCell(value string) string {
	trimmed := strings.TrimSpace(value)
	switch strings.ToLower(trimmed) {
	case "nan", "none", "null":
		return ""
	}
	return trimmed
}

// columnIndexes locates the expected columns in a header row. The second
// return lists the columns the header is missing.
func columnIndexes(header []string) (map[string]int, []string) {
	indexes := make(map[string]int, len(expectedColumns))
	for i, name := range header {
		indexes[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range expectedColumns {
		if _, ok := indexes[name]; !ok {
			missing = append(missing, name)
		}
	}
	return indexes, missing
}

// gridToRows converts the raw value grid (header row first) to domain rows.
// Rows without a key are skipped; every cell is normalized on the way in.
func gridToRows(values [][]string) []domain.Row {
	if len(values) == 0 {
		return nil
	}
	indexes, _ := columnIndexes(values[0])

	cell := func(record []string, column string) string {
		i, ok := indexes[column]
		if !ok || i >= len(record) {
			return ""
		}
		return normalizeCell(record[i])
	}

	var rows []domain.Row
	for _, record := range values[1:] {
		key := cell(record, "key")
		if key == "" {
			continue
		}
		rows = append(rows, domain.Row{
			Key:         key,
			Celebrant:   cell(record, "celebrant"),
			Note:        cell(record, "note"),
			CustomTitle: cell(record, "customTitle"),
		})
	}
	return rows
}

// rowsToGrid converts domain rows back to the value grid, header first.
// Empty fields are written as empty cells, never as a textual sentinel.
func rowsToGrid(rows []domain.Row) [][]string {
	values := make([][]string, 0, len(rows)+1)
	values = append(values, append([]string(nil), expectedColumns...))
	for _, row := range rows {
		values = append(values, []string{row.Key, row.Celebrant, row.Note, row.CustomTitle})
	}
	return values
}
