package sessions

import (
	"io"

	"github.com/reusee/modelrun/exports"
)

// Table returns the dataset as a grid. See exports.Table.
func (s *Session) Table() [][]string {
	return exports.Table(s.store)
}

// Export writes the dataset as delimited text.
func (s *Session) Export(w io.Writer) error {
	return exports.Write(w, s.Table(), rune(s.delimiter))
}
