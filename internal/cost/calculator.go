package cost

// Rates holds Firecrawl plan pricing.
type Rates struct {
	PlanMonthly     float64 `yaml:"plan_monthly" mapstructure:"plan_monthly"`
	CreditsIncluded float64 `yaml:"credits_included" mapstructure:"credits_included"`
}

// Calculator converts Firecrawl credit usage into plan cost.
type Calculator struct {
	rates Rates
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// PerCredit returns the effective price of one credit, or 0 when the plan
// includes no credits.
func (c *Calculator) PerCredit() float64 {
	if c.rates.CreditsIncluded <= 0 {
		return 0
	}
	return c.rates.PlanMonthly / c.rates.CreditsIncluded
}

// Credits computes the cost of n credits.
func (c *Calculator) Credits(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) * c.PerCredit()
}

// DefaultRates returns the default pricing rates.
func DefaultRates() Rates {
	return Rates{PlanMonthly: 19.00, CreditsIncluded: 3000}
}
