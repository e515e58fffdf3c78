package folio

import (
	"math"
	"time"
)

// CashFlow is a signed amount on a date: negative when money leaves the
// investor (an investment), positive when it comes back.
type CashFlow struct {
	Date   time.Time
	Amount float64
}

const (
	xirrGuess     = 0.10 // initial rate
	xirrTolerance = 1e-6
	xirrMaxIter   = 100
	daysPerYear   = 365.0
)

// XIRR returns the annualized internal rate of return of flows, as a
// percentage.
//
// Flows must be in chronological order: the first flow's date is the time
// origin and the flows are not sorted. Fewer than two flows yield 0.
//
// The rate is found by Newton-Raphson iteration starting at 10%. It stops
// when two successive rates differ by less than 1e-6, or after 100
// iterations returning the last rate. The rate never goes below -100%: a
// step that would cross it is halved towards -100% instead. Flows that
// never return any money yield -100%. If the first step is not finite
// (a zero derivative) it returns 0, otherwise it returns the last finite
// rate.
func XIRR(flows []CashFlow) Percent {
	if len(flows) < 2 {
		return 0
	}
	if !anyInflow(flows) {
		return -100
	}
	origin := flows[0].Date
	years := make([]float64, len(flows))
	for i, f := range flows {
		years[i] = f.Date.Sub(origin).Hours() / 24 / daysPerYear
	}

	rate := xirrGuess
	for n := range xirrMaxIter {
		var f, df float64
		for i, flow := range flows {
			t := years[i]
			f += flow.Amount / math.Pow(1+rate, t)
			df -= flow.Amount * t / math.Pow(1+rate, t+1)
		}
		next := rate - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) {
			if n == 0 {
				return 0
			}
			break
		}
		if next <= -1 {
			next = (rate - 1) / 2
		}
		if math.Abs(next-rate) < xirrTolerance {
			rate = next
			break
		}
		rate = next
	}
	return Percent(rate * 100)
}

func anyInflow(flows []CashFlow) bool {
	for _, f := range flows {
		if f.Amount > 0 {
			return true
		}
	}
	return false
}
