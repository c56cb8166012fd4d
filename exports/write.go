package exports

import (
	"bufio"
	"io"
	"strings"
)

// Write writes grid with cells separated by delim and every row terminated
// by a newline. Cells are not escaped.
func Write(w io.Writer, grid [][]string, delim rune) error {
	bw := bufio.NewWriter(w)
	sep := string(delim)
	for _, row := range grid {
		if _, err := bw.WriteString(strings.Join(row, sep)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
