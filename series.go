package safehaven

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/etnz/safehaven/date"
	"github.com/shopspring/decimal"
)

// AnnualReturn is one year of the S&P 500 study: the index level on
// January 1st, the price return against the previous year, the dividend
// yield carried over from the previous December, and their sum binned
// into a ReturnRange.
type AnnualReturn struct {
	Year          int
	Price         decimal.Decimal
	Return        Percent
	DividendYield Percent
	TotalReturn   Percent
	Range         ReturnRange
}

// Series is the chronologically ordered annual total-return series.
type Series struct {
	returns []AnnualReturn
}

// NewSeries builds a series from annual returns, sorted by year.
// A duplicated year is an error.
func NewSeries(returns ...AnnualReturn) (*Series, error) {
	rs := slices.Clone(returns)
	slices.SortFunc(rs, func(a, b AnnualReturn) int { return a.Year - b.Year })
	for i := 1; i < len(rs); i++ {
		if rs[i].Year == rs[i-1].Year {
			return nil, fmt.Errorf("duplicate year %d in series", rs[i].Year)
		}
	}
	return &Series{returns: rs}, nil
}

// Len returns the number of years in the series.
func (s *Series) Len() int { return len(s.returns) }

// Returns iterates over the annual returns in chronological order.
func (s *Series) Returns() iter.Seq[AnnualReturn] {
	return func(yield func(AnnualReturn) bool) {
		for _, r := range s.returns {
			if !yield(r) {
				return
			}
		}
	}
}

// Get returns the annual return for a year.
func (s *Series) Get(year int) (AnnualReturn, bool) {
	for _, r := range s.returns {
		if r.Year == year {
			return r, true
		}
	}
	return AnnualReturn{}, false
}

// First returns the earliest year of the series.
func (s *Series) First() (AnnualReturn, bool) {
	if len(s.returns) == 0 {
		return AnnualReturn{}, false
	}
	return s.returns[0], true
}

// Last returns the latest year of the series.
func (s *Series) Last() (AnnualReturn, bool) {
	if len(s.returns) == 0 {
		return AnnualReturn{}, false
	}
	return s.returns[len(s.returns)-1], true
}

// Distribution counts the years falling into each return range.
func (s *Series) Distribution() map[ReturnRange]int {
	dist := make(map[ReturnRange]int)
	for _, r := range s.returns {
		dist[r.Range]++
	}
	return dist
}

// RangeStats summarizes the total returns of the years within one bin.
type RangeStats struct {
	Count int
	Min   Percent
	Max   Percent
	Mean  Percent
}

// Stats computes per-bin min, max and mean of the total returns.
// Bins with no year are absent from the result.
func (s *Series) Stats() map[ReturnRange]RangeStats {
	stats := make(map[ReturnRange]RangeStats)
	for _, r := range s.returns {
		st, ok := stats[r.Range]
		if !ok {
			st = RangeStats{Min: r.TotalReturn, Max: r.TotalReturn}
		}
		if r.TotalReturn < st.Min {
			st.Min = r.TotalReturn
		}
		if r.TotalReturn > st.Max {
			st.Max = r.TotalReturn
		}
		st.Mean += r.TotalReturn // holds the sum until the final pass
		st.Count++
		stats[r.Range] = st
	}
	for rng, st := range stats {
		st.Mean = st.Mean / Percent(st.Count)
		stats[rng] = st
	}
	return stats
}

// BuildSeries reduces the monthly price and dividend-yield observations
// to the annual series. Prices are sampled on January 1st of each year;
// yields on December 31st, carried over to the following January 1st.
// Yield observations come in percent units and are converted to
// fractions. The first sampled year has no price return and is dropped,
// and so is any year missing its yield.
func BuildSeries(prices, yields *date.History[float64]) (*Series, error) {
	if prices.Len() == 0 {
		return nil, fmt.Errorf("no price observations")
	}

	// Yield of Dec 31st belongs to the next year's January 1st.
	yieldByYear := make(map[int]float64)
	for on, v := range yields.Values() {
		if on.Month() == time.December && on.Day() == 31 {
			yieldByYear[on.Year()+1] = v / 100
		}
	}

	var returns []AnnualReturn
	var prev decimal.Decimal
	first := true
	for on, v := range prices.Values() {
		if on.Month() != time.January || on.Day() != 1 {
			continue
		}
		price := decimal.NewFromFloat(v)
		if price.IsZero() || price.IsNegative() {
			return nil, fmt.Errorf("invalid price %s on %s", price, on)
		}
		if first {
			prev, first = price, false
			continue
		}
		ret, _ := price.Div(prev).Sub(decimal.NewFromInt(1)).Float64()
		prev = price

		dy, ok := yieldByYear[on.Year()]
		if !ok {
			continue
		}
		total := Percent(ret) + Percent(dy)
		returns = append(returns, AnnualReturn{
			Year:          on.Year(),
			Price:         price,
			Return:        Percent(ret),
			DividendYield: Percent(dy),
			TotalReturn:   total,
			Range:         Classify(total),
		})
	}
	if len(returns) == 0 {
		return nil, fmt.Errorf("no overlapping years between prices and yields")
	}
	return NewSeries(returns...)
}
