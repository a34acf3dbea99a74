package steps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"
)

// cellValue returns the value of the named column for one data row,
// resolving the column through the table's header row.
func cellValue(table *godog.Table, row *messages.PickleTableRow, column string) (string, error) {
	if len(table.Rows) == 0 {
		return "", fmt.Errorf("table has no header row")
	}
	for i, header := range table.Rows[0].Cells {
		if header.Value == column {
			if i >= len(row.Cells) {
				return "", fmt.Errorf("row has no cell for column %q", column)
			}
			return row.Cells[i].Value, nil
		}
	}
	return "", fmt.Errorf("table has no column %q", column)
}

// intCell parses the named column of one data row as an integer.
func intCell(table *godog.Table, row *messages.PickleTableRow, column string) (int, error) {
	raw, err := cellValue(table, row, column)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return value, nil
}

// dataRows returns the table rows after the header.
func dataRows(table *godog.Table) []*messages.PickleTableRow {
	if len(table.Rows) < 2 {
		return nil
	}
	return table.Rows[1:]
}

// splitList parses a quoted comma-separated list from a step argument.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
