package safehaven

import "fmt"

// Profile is a safe haven payoff profile: the return the haven delivers
// in each S&P 500 return range, crash bucket first.
type Profile struct {
	Name    string
	Title   string
	payoffs [5]Percent // aligned with Ranges()
}

// NewProfile builds a profile from exactly five payoffs, one per return
// range in ascending order (< -15% first).
func NewProfile(name, title string, payoffs []float64) (Profile, error) {
	if len(payoffs) != len(Ranges()) {
		return Profile{}, fmt.Errorf("profile %q: want %d payoffs, got %d", name, len(Ranges()), len(payoffs))
	}
	p := Profile{Name: name, Title: title}
	for i, v := range payoffs {
		if v < -1 {
			return Profile{}, fmt.Errorf("profile %q: payoff %g is below a total loss", name, v)
		}
		p.payoffs[i] = Percent(v)
	}
	return p, nil
}

// Payoff returns the profile's payoff in the given return range.
func (p Profile) Payoff(r ReturnRange) Percent {
	for i, rng := range Ranges() {
		if rng == r {
			return p.payoffs[i]
		}
	}
	return 0
}

// The study's three safe haven prototypes. The insurance prototype pays
// explosively in a crash and loses its premium everywhere else; the
// store of value drifts with, not against, the index; the cash anchor
// pays the same small carry no matter what.
var (
	Insurance    = mustProfile("insurance", "Insurance Payoff Profile", []float64{9.00, -1.00, -1.00, -1.00, -1.00})
	StoreOfValue = mustProfile("store-of-value", "Store of Value Payoff Profile", []float64{0.05, 0.02, 0.00, -0.01, -0.02})
	CashAnchor   = mustProfile("cash", "Cash Payoff Profile", []float64{0.02, 0.02, 0.02, 0.02, 0.02})
)

func mustProfile(name, title string, payoffs []float64) Profile {
	p, err := NewProfile(name, title, payoffs)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Prototypes returns the built-in safe haven prototypes.
func Prototypes() []Profile { return []Profile{Insurance, StoreOfValue, CashAnchor} }

// LookupProfile finds a built-in prototype by name.
func LookupProfile(name string) (Profile, bool) {
	for _, p := range Prototypes() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// ComparisonRow is one return range of an SPX versus safe haven
// comparison: how often the index landed there, what it returned, what
// the haven pays there, and what the blended portfolio makes.
type ComparisonRow struct {
	Range   ReturnRange
	Years   int
	SPX     RangeStats
	Haven   Percent
	Blended Percent
}

// Comparison is the full per-range comparison of the index, a safe
// haven profile, and their blend at a given haven allocation.
type Comparison struct {
	Profile    Profile
	Allocation Percent
	Rows       []ComparisonRow
}

// Compare blends the index's per-range mean total return with the
// profile's payoff at the given haven allocation.
func Compare(s *Series, p Profile, allocation float64) (*Comparison, error) {
	if allocation < 0 || allocation > 1 {
		return nil, fmt.Errorf("allocation %g must be within [0, 1]", allocation)
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("empty series")
	}
	stats := s.Stats()
	c := &Comparison{Profile: p, Allocation: Percent(allocation)}
	for _, rng := range Ranges() {
		st := stats[rng] // zero stats for a bucket with no year
		haven := p.Payoff(rng)
		c.Rows = append(c.Rows, ComparisonRow{
			Range:   rng,
			Years:   st.Count,
			SPX:     st,
			Haven:   haven,
			Blended: Percent(1-allocation)*st.Mean + Percent(allocation)*haven,
		})
	}
	return c, nil
}
