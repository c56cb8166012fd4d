package samples

import (
	"fmt"

	"github.com/reusee/modelrun/models"
)

// Savings splits GDP into savings and investments by a savings rate.
type Savings struct {
	LL          int
	SavingsRate []float64
	GDP         []float64
	Consumption []float64

	Savings     []float64
	Investments []float64
}

func init() {
	models.Register("Model2", NewSavings)
}

func NewSavings() *Savings {
	return new(Savings)
}

func (s *Savings) Bindings() []models.Binding {
	return []models.Binding{
		models.Int("LL", &s.LL),
		models.Series("savingsRate", &s.SavingsRate),
		models.Series("GDP", &s.GDP),
		models.Series("consumption", &s.Consumption),
		models.Series("savings", &s.Savings),
		models.Series("investments", &s.Investments),
	}
}

func (s *Savings) Run() error {
	if len(s.GDP) < s.LL || len(s.SavingsRate) < s.LL {
		return fmt.Errorf("GDP and savingsRate need %d values", s.LL)
	}
	s.Savings = make([]float64, s.LL)
	s.Investments = make([]float64, s.LL)
	for t := range s.LL {
		s.Savings[t] = s.GDP[t] * s.SavingsRate[t]
		s.Investments[t] = s.GDP[t] - s.Savings[t]
	}
	return nil
}
