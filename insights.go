package folio

// Insights highlights notable holdings. It is empty (IsEmpty) when there are
// no holdings.
type Insights struct {
	IsEmpty     bool
	TopGainer   Holding // highest P&L percentage
	TopLoser    Holding // lowest P&L percentage
	BiggestMove Holding // largest absolute day change percentage
}

// NewInsights picks the notable holdings. Ties go to the first holding in
// symbol order.
func NewInsights(holdings []Holding) Insights {
	if len(holdings) == 0 {
		return Insights{IsEmpty: true}
	}
	in := Insights{TopGainer: holdings[0], TopLoser: holdings[0], BiggestMove: holdings[0]}
	for _, h := range holdings[1:] {
		if h.PnLPercent > in.TopGainer.PnLPercent {
			in.TopGainer = h
		}
		if h.PnLPercent < in.TopLoser.PnLPercent {
			in.TopLoser = h
		}
		if abs(h.DayChangePercent) > abs(in.BiggestMove.DayChangePercent) {
			in.BiggestMove = h
		}
	}
	return in
}

func abs(p Percent) Percent {
	if p < 0 {
		return -p
	}
	return p
}
