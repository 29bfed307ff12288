package safehaven

import "fmt"

// Percent represents a rate of return as a fraction: 0.15 is 15%.
type Percent float64

// Equal compares two percents with a small tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percent with two decimals, e.g. "15.00%".
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", 100*float64(p))
}

// SignedString formats the percent with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", 100*float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
