package safehaven

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// WalkResult summarizes Monte Carlo random walks of a repeated bet:
// wealth is compounded roll after roll, starting from 1.
type WalkResult struct {
	Bet   Bet
	Walks int
	Rolls int

	// Per-roll percentiles of compounded wealth across all walks.
	P5     []float64
	Median []float64
	P95    []float64

	// Per-walk geometric average return over the full walk.
	GeometricReturns []Percent

	// ExpectedReturn is the geometric mean of the bet itself, the
	// return the median walk converges to.
	ExpectedReturn Percent
}

// RandomWalks draws rolls outcomes per walk from the bet and compounds
// them. The rng drives the draws, seed it for reproducible studies.
func RandomWalks(rng *rand.Rand, walks, rolls int, bet Bet) (*WalkResult, error) {
	if walks < 1 || rolls < 1 {
		return nil, fmt.Errorf("want at least 1 walk and 1 roll, got %d and %d", walks, rolls)
	}
	outcomes := bet.Outcomes()

	paths := make([][]float64, walks)
	for w := range paths {
		path := make([]float64, rolls)
		wealth := 1.0
		for r := range path {
			wealth *= outcomes[rng.IntN(len(outcomes))]
			path[r] = wealth
		}
		paths[w] = path
	}

	res := &WalkResult{
		Bet:            bet,
		Walks:          walks,
		Rolls:          rolls,
		P5:             make([]float64, rolls),
		Median:         make([]float64, rolls),
		P95:            make([]float64, rolls),
		ExpectedReturn: GeometricMean(outcomes),
	}

	column := make([]float64, walks)
	for r := range rolls {
		for w := range paths {
			column[w] = paths[w][r]
		}
		res.P5[r] = Percentile(column, 5)
		res.Median[r] = Percentile(column, 50)
		res.P95[r] = Percentile(column, 95)
	}

	res.GeometricReturns = make([]Percent, walks)
	for w := range paths {
		final := paths[w][rolls-1]
		res.GeometricReturns[w] = Percent(math.Pow(final, 1/float64(rolls)) - 1)
	}
	return res, nil
}

// Percentile returns the p-th percentile of values using linear
// interpolation between closest ranks.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Interval returns the lo-th and hi-th percentiles of the per-walk
// geometric returns, e.g. Interval(5, 95) for the 90% interval.
func (r *WalkResult) Interval(lo, hi float64) (Percent, Percent) {
	values := make([]float64, len(r.GeometricReturns))
	for i, g := range r.GeometricReturns {
		values[i] = float64(g)
	}
	return Percent(Percentile(values, lo)), Percent(Percentile(values, hi))
}

// EndingWealth returns the p-th percentile of final compounded wealth.
func (r *WalkResult) EndingWealth(p float64) float64 {
	switch p {
	case 5:
		return r.P5[r.Rolls-1]
	case 50:
		return r.Median[r.Rolls-1]
	case 95:
		return r.P95[r.Rolls-1]
	}
	values := make([]float64, len(r.GeometricReturns))
	for i, g := range r.GeometricReturns {
		values[i] = math.Pow(1+float64(g), float64(r.Rolls))
	}
	return Percentile(values, p)
}
