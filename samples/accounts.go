package samples

import (
	"fmt"

	"github.com/reusee/modelrun/models"
)

// Accounts rescales national account aggregates from period 1 onwards.
// Growth rates are bound for use by scripts but not read by Run.
type Accounts struct {
	LL int

	TwKI  []float64 // private consumption growth
	TwKS  []float64 // public consumption growth
	TwINW []float64 // investment growth
	TwEKS []float64 // export growth
	TwIMP []float64 // import growth

	KI  []float64 // private consumption
	KS  []float64 // public consumption
	INW []float64 // investments
	EKS []float64 // export
	IMP []float64 // import
	PKB []float64 // GDP
}

func init() {
	models.Register("Model22", NewAccounts)
}

func NewAccounts() *Accounts {
	return new(Accounts)
}

func (a *Accounts) Bindings() []models.Binding {
	return []models.Binding{
		models.Int("LL", &a.LL),
		models.Series("twKI", &a.TwKI),
		models.Series("twKS", &a.TwKS),
		models.Series("twINW", &a.TwINW),
		models.Series("twEKS", &a.TwEKS),
		models.Series("twIMP", &a.TwIMP),
		models.Series("KI", &a.KI),
		models.Series("KS", &a.KS),
		models.Series("INW", &a.INW),
		models.Series("EKS", &a.EKS),
		models.Series("IMP", &a.IMP),
		models.Series("PKB", &a.PKB),
	}
}

func (a *Accounts) Run() error {
	for _, input := range []struct {
		name   string
		series []float64
	}{
		{"KI", a.KI},
		{"KS", a.KS},
		{"INW", a.INW},
		{"EKS", a.EKS},
		{"IMP", a.IMP},
		{"PKB", a.PKB},
	} {
		if len(input.series) < a.LL {
			return fmt.Errorf("%s needs %d values, got %d", input.name, a.LL, len(input.series))
		}
	}
	for t := 1; t < a.LL; t++ {
		a.KI[t] = float64(1 + t)
		a.KS[t] = float64(2 + t)
		a.INW[t] = float64(3 + t)
		a.EKS[t] = a.EKS[t] / 1000
		a.IMP[t] = a.IMP[t] / 10000
		a.PKB[t] = a.PKB[t] / 3000
	}
	return nil
}
