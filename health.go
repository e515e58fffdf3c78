package folio

import "fmt"

// Grade is the letter grade of a health score.
type Grade string

const (
	Excellent Grade = "Excellent"
	Good      Grade = "Good"
	Fair      Grade = "Fair"
	Poor      Grade = "Poor"
)

// MaxDimensionScore is the maximum score of each health dimension.
const MaxDimensionScore = 25

// HealthDimension is one scored aspect of the portfolio.
type HealthDimension struct {
	Label       string
	Score       int
	MaxScore    int
	Description string // why that score was given, quoting the metric
}

// Health is the graded 0-100 score of a portfolio.
//
// A Health of no holdings is empty: IsEmpty is true, Score is 0 and Grade is
// Poor. Check IsEmpty before rendering, a zero score being otherwise
// indistinguishable from a genuinely poor portfolio.
type Health struct {
	Score      int
	Grade      Grade
	IsEmpty    bool
	Dimensions []HealthDimension // concentration, diversification, profitability, XIRR quality
}

// threshold maps a metric at least Min to Points.
type threshold struct {
	Min    float64
	Points int
}

// score returns the points of the first threshold v reaches, or fallback.
// thresholds are in decreasing Min order.
func score(v float64, thresholds []threshold, fallback int) int {
	for _, t := range thresholds {
		if v >= t.Min {
			return t.Points
		}
	}
	return fallback
}

// concentrationScore scores the largest contribution: the lower the better.
func concentrationScore(maxContribution Percent) int {
	switch c := float64(maxContribution); {
	case c < 15:
		return 25
	case c < 25:
		return 18
	case c < 40:
		return 10
	default:
		return 3
	}
}

func holdingsCountScore(n int) int {
	return score(float64(n), []threshold{{15, 15}, {8, 12}, {4, 8}}, 3)
}

func sectorCountScore(n int) int {
	return score(float64(n), []threshold{{5, 10}, {3, 7}, {2, 4}}, 1)
}

func profitabilityScore(p Percent) int {
	return score(float64(p), []threshold{{30, 25}, {15, 20}, {5, 14}, {0, 8}}, 2)
}

func xirrScore(x Percent) int {
	return score(float64(x), []threshold{{20, 25}, {12, 20}, {8, 14}, {0, 7}}, 1)
}

// GradeOf returns the grade of a 0-100 score.
func GradeOf(total int) Grade {
	switch {
	case total >= 80:
		return Excellent
	case total >= 60:
		return Good
	case total >= 40:
		return Fair
	default:
		return Poor
	}
}

// NewHealth scores holdings and summary.
//
// The sector count ignores holdings without a sector: unknown data does not
// count as diversification.
func NewHealth(holdings []Holding, summary Summary) Health {
	if len(holdings) == 0 {
		return Health{Grade: Poor, IsEmpty: true}
	}

	largest := holdings[0]
	sectors := make(map[string]struct{})
	for _, h := range holdings {
		if h.Contribution > largest.Contribution {
			largest = h
		}
		if s := orOther(h.Sector); s != Other {
			sectors[s] = struct{}{}
		}
	}

	concentration := HealthDimension{
		Label:       "Concentration",
		Score:       concentrationScore(largest.Contribution),
		Description: fmt.Sprintf("Largest holding %s is %s of the portfolio", largest.Symbol, largest.Contribution),
	}
	diversification := HealthDimension{
		Label:       "Diversification",
		Score:       holdingsCountScore(len(holdings)) + sectorCountScore(len(sectors)),
		Description: fmt.Sprintf("%d holdings across %d sectors", len(holdings), len(sectors)),
	}
	profitability := HealthDimension{
		Label:       "Profitability",
		Score:       profitabilityScore(summary.ProfitPercent),
		Description: fmt.Sprintf("Overall return on invested capital is %s", summary.ProfitPercent),
	}
	xirr := HealthDimension{
		Label:       "XIRR Quality",
		Score:       xirrScore(summary.XIRR),
		Description: fmt.Sprintf("Annualized return (XIRR) is %s", summary.XIRR),
	}

	h := Health{Dimensions: []HealthDimension{concentration, diversification, profitability, xirr}}
	for i := range h.Dimensions {
		h.Dimensions[i].MaxScore = MaxDimensionScore
		h.Score += h.Dimensions[i].Score
	}
	h.Grade = GradeOf(h.Score)
	return h
}
