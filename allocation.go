package folio

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Dimension is a categorical attribute holdings are grouped by.
type Dimension int

const (
	BySector Dimension = iota
	ByCompany
	ByAssetType
	ByBroker
)

// Other is the bucket name of holdings whose dimension value is missing.
const Other = "Other"

func (d Dimension) String() string {
	switch d {
	case BySector:
		return "sector"
	case ByCompany:
		return "company"
	case ByAssetType:
		return "asset type"
	case ByBroker:
		return "broker"
	default:
		return "unknown"
	}
}

// ParseDimension parses a dimension name.
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sector":
		return BySector, nil
	case "company", "company name", "name":
		return ByCompany, nil
	case "asset", "asset type", "assettype", "type":
		return ByAssetType, nil
	case "broker":
		return ByBroker, nil
	default:
		return BySector, fmt.Errorf("unknown dimension %q", s)
	}
}

// of returns the dimension value of a holding, Other when missing.
func (d Dimension) of(h Holding) string {
	var v string
	switch d {
	case BySector:
		v = h.Sector
	case ByCompany:
		v = h.Name
	case ByAssetType:
		v = h.AssetType
	case ByBroker:
		v = h.Broker
	}
	return orOther(v)
}

func orOther(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return Other
	}
	return v
}

// Bucket aggregates the holdings sharing one dimension value.
type Bucket struct {
	Name       string
	Value      Money   // Σ current value
	Invested   Money   // Σ net invested capital
	PnL        Money   // Σ P&L
	PnLPercent Percent // PnL / Invested, 0 when Invested <= 0
	Percent    Percent // Value / total value of all buckets
	// Symbol and Logo represent the bucket when grouping by company; they are
	// empty otherwise.
	Symbol string
	Logo   string
}

// Allocation is the breakdown of holdings along one dimension.
//
// An Allocation of no holdings is empty: IsEmpty is true and there is no
// bucket.
type Allocation struct {
	Dimension Dimension
	Total     Money
	Buckets   []Bucket // sorted by name
	IsEmpty   bool
}

// NewAllocation groups holdings by dim. Holdings with no value for dim are
// grouped under Other.
func NewAllocation(holdings []Holding, dim Dimension, cur string) Allocation {
	a := Allocation{Dimension: dim, Total: M(0, cur)}
	if len(holdings) == 0 {
		a.IsEmpty = true
		return a
	}

	index := make(map[string]int)
	for _, h := range holdings {
		name := dim.of(h)
		i, ok := index[name]
		if !ok {
			i = len(a.Buckets)
			index[name] = i
			b := Bucket{Name: name, Value: M(0, cur), Invested: M(0, cur), PnL: M(0, cur)}
			if dim == ByCompany {
				b.Symbol, b.Logo = h.Symbol, h.Logo
			}
			a.Buckets = append(a.Buckets, b)
		}
		b := &a.Buckets[i]
		b.Value = b.Value.Add(h.Value)
		b.Invested = b.Invested.Add(h.Invested)
		b.PnL = b.PnL.Add(h.PnL)
		a.Total = a.Total.Add(h.Value)
	}
	for i := range a.Buckets {
		b := &a.Buckets[i]
		b.PnLPercent = b.PnL.Ratio(b.Invested)
		b.Percent = b.Value.Ratio(a.Total)
	}
	slices.SortFunc(a.Buckets, func(x, y Bucket) int { return strings.Compare(x.Name, y.Name) })
	return a
}

// BucketOrder is a sort order of allocation buckets.
type BucketOrder int

const (
	ByName BucketOrder = iota
	ByValue
	ByPnL
	ByPercent
)

// ParseBucketOrder parses a bucket sort order name.
func ParseBucketOrder(s string) (BucketOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "":
		return ByName, nil
	case "value":
		return ByValue, nil
	case "pnl", "p&l", "profit":
		return ByPnL, nil
	case "percent", "weight", "%":
		return ByPercent, nil
	default:
		return ByName, fmt.Errorf("unknown sort order %q", s)
	}
}

// Sorted returns the buckets sorted in decreasing order of the given
// criterion; ties, and ByName, sort alphabetically.
func (a Allocation) Sorted(order BucketOrder) []Bucket {
	sorted := slices.Clone(a.Buckets)
	slices.SortStableFunc(sorted, func(x, y Bucket) int {
		var c int
		switch order {
		case ByValue:
			c = y.Value.Decimal().Cmp(x.Value.Decimal())
		case ByPnL:
			c = y.PnL.Decimal().Cmp(x.PnL.Decimal())
		case ByPercent:
			c = cmp.Compare(y.Percent, x.Percent)
		}
		if c != 0 {
			return c
		}
		return strings.Compare(x.Name, y.Name)
	})
	return sorted
}
