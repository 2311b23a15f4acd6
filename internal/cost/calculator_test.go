package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredits(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Rates{PlanMonthly: 30, CreditsIncluded: 3000})

	tests := []struct {
		name    string
		credits int
		want    float64
	}{
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"one", 1, 0.01},
		{"single page crawl", 50, 0.5},
		{"full plan", 3000, 30},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, calc.Credits(tt.credits), 1e-9)
		})
	}
}

func TestPerCredit_NoIncludedCredits(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Rates{PlanMonthly: 19})
	assert.Zero(t, calc.PerCredit())
	assert.Zero(t, calc.Credits(100))
}

func TestDefaultRates(t *testing.T) {
	t.Parallel()
	rates := DefaultRates()
	assert.Positive(t, rates.PlanMonthly)
	assert.Positive(t, rates.CreditsIncluded)
	assert.InDelta(t, 19.0/3000, NewCalculator(rates).PerCredit(), 1e-12)
}
