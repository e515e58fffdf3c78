package folio

import "math"

const (
	// DefaultInflationRate deflates projected values into today's purchasing
	// power.
	DefaultInflationRate = 0.06
	// DefaultFallbackReturn replaces a measured annual return that is zero or
	// negative. Projecting a portfolio at a negative rate for decades produces
	// figures users find alarming and meaningless; this is a product decision,
	// not a numerical one.
	DefaultFallbackReturn = 0.12
)

// Assumptions are the rates a projection is computed with, as fractions
// (0.12 for 12%).
type Assumptions struct {
	AnnualReturn   float64 // expected annual return, e.g. the portfolio XIRR
	InflationRate  float64
	FallbackReturn float64 // used when AnnualReturn <= 0
}

// DefaultAssumptions returns the assumptions with the default inflation and
// fallback rates, and the given annual return.
func DefaultAssumptions(annualReturn float64) Assumptions {
	return Assumptions{
		AnnualReturn:   annualReturn,
		InflationRate:  DefaultInflationRate,
		FallbackReturn: DefaultFallbackReturn,
	}
}

// rate returns the annual return to project with.
func (a Assumptions) rate() (r float64, fallback bool) {
	if a.AnnualReturn > 0 && !math.IsInf(a.AnnualReturn, 0) {
		return a.AnnualReturn, false
	}
	if a.FallbackReturn > 0 {
		return a.FallbackReturn, true
	}
	return DefaultFallbackReturn, true
}

// Projection is the compounded future value of a portfolio and of a
// recurring monthly contribution.
type Projection struct {
	Years        int
	AnnualReturn float64 // rate actually used, as a fraction
	UsedFallback bool    // true when the fallback return replaced the given one
	Inflation    float64

	Current      Money   // current value V0
	Monthly      Money   // monthly contribution
	FutureValue  Money   // V0 compounded plus the contributions annuity
	Invested     Money   // V0 + 12 × Years × Monthly, not compounded
	Gains        Money   // FutureValue - Invested
	Multiplier   float64 // FutureValue / V0, 0 when V0 <= 0
	PresentValue Money   // FutureValue in today's purchasing power
}

// NewProjection projects the current value v0 and a monthly contribution
// over years.
//
// v0 compounds annually at the annual rate r. Contributions are paid at the
// end of each month and compound monthly at the equivalent monthly rate
// (1+r)^(1/12) - 1, so that twelve monthly periods compound exactly like one
// year. The present value deflates the future value by the inflation rate
// compounded annually over the same years.
func NewProjection(v0, monthly Money, years int, a Assumptions) Projection {
	cur := v0.Currency()
	if cur == "" {
		cur = monthly.Currency()
	}
	r, fallback := a.rate()
	p := Projection{
		Years:        max(years, 0),
		AnnualReturn: r,
		UsedFallback: fallback,
		Inflation:    a.InflationRate,
		Current:      v0,
		Monthly:      monthly,
	}

	n := float64(p.Years)
	months := 12 * n
	current, contribution := v0.AsFloat(), monthly.AsFloat()

	lump := current * math.Pow(1+r, n)
	i := math.Pow(1+r, 1.0/12) - 1
	annuity := contribution * months
	if i != 0 {
		annuity = contribution * (math.Pow(1+i, months) - 1) / i
	}
	future := lump + annuity
	invested := current + contribution*months

	p.FutureValue = finite(future, cur)
	p.Invested = finite(invested, cur)
	p.Gains = p.FutureValue.Sub(p.Invested)
	if current > 0 && !math.IsInf(future, 0) && !math.IsNaN(future) {
		p.Multiplier = future / current
	}
	p.PresentValue = finite(future/math.Pow(1+a.InflationRate, n), cur)
	return p
}

// finite converts v into Money, 0 when v is not a finite number.
func finite(v float64, cur string) Money {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return M(0, cur)
	}
	return M(v, cur)
}
