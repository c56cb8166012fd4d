package samples

import (
	"fmt"

	"github.com/reusee/modelrun/models"
)

// ExportIndex overwrites ZDEKS from period 1 with 1000 plus the period index.
type ExportIndex struct {
	LL    int
	ZDEKS []float64
}

func init() {
	models.Register("Model3", NewExportIndex)
	models.Register("Model33", NewExportIndex)
}

func NewExportIndex() *ExportIndex {
	return new(ExportIndex)
}

func (e *ExportIndex) Bindings() []models.Binding {
	return []models.Binding{
		models.Int("LL", &e.LL),
		models.Series("ZDEKS", &e.ZDEKS),
	}
}

func (e *ExportIndex) Run() error {
	if len(e.ZDEKS) < e.LL {
		return fmt.Errorf("ZDEKS needs %d values, got %d", e.LL, len(e.ZDEKS))
	}
	for t := 1; t < e.LL; t++ {
		e.ZDEKS[t] = float64(t + 1000)
	}
	return nil
}
