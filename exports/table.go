// Package exports renders a store as a delimited text grid.
package exports

import (
	"strconv"

	"github.com/reusee/modelrun/stores"
)

// Table returns one row per store entry in insertion order. A series row is
// its name followed by its values. The labels row starts with LATA, as in the
// loaded file, so the cell before the labels is data rather than a variable
// name. Scalars are omitted; a store holding only scalars yields no rows.
func Table(store *stores.Store) [][]string {
	var rows [][]string
	for name, value := range store.All() {
		switch value := value.(type) {
		case stores.Series:
			row := make([]string, 0, len(value)+1)
			row = append(row, name)
			for _, v := range value {
				row = append(row, FormatFloat(v))
			}
			rows = append(rows, row)
		case stores.Labels:
			row := make([]string, 0, len(value)+1)
			row = append(row, name)
			row = append(row, value...)
			rows = append(rows, row)
		}
	}
	return rows
}

// FormatFloat formats v in the shortest form that parses back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
