package safehaven

import "fmt"

// ReturnRange classifies an annual total return into one of five ordered
// bins. The edges follow the study's convention: right-closed intervals
// at -15%, 0%, 15% and 30%.
type ReturnRange int

const (
	// Unclassified is the zero value, for a return that was never binned.
	Unclassified ReturnRange = iota
	DeepLoss                 // < -15%
	Loss                     // -15% to 0%
	ModestGain               // 0% to 15%
	StrongGain               // 15% to 30%
	Boom                     // > 30%
)

// Ranges returns the five return ranges in ascending order.
func Ranges() []ReturnRange {
	return []ReturnRange{DeepLoss, Loss, ModestGain, StrongGain, Boom}
}

var rangeLabels = map[ReturnRange]string{
	Unclassified: "unclassified",
	DeepLoss:     "< -15%",
	Loss:         "-15% to 0%",
	ModestGain:   "0% to 15%",
	StrongGain:   "15% to 30%",
	Boom:         "> 30%",
}

// String returns the bin label, e.g. "-15% to 0%".
func (r ReturnRange) String() string {
	label, ok := rangeLabels[r]
	if !ok {
		return fmt.Sprintf("ReturnRange(%d)", int(r))
	}
	return label
}

// ParseReturnRange parses a bin label back into a ReturnRange.
func ParseReturnRange(label string) (ReturnRange, error) {
	for r, l := range rangeLabels {
		if l == label {
			return r, nil
		}
	}
	return Unclassified, fmt.Errorf("unknown return range %q", label)
}

// Classify bins a total return. Intervals are closed on the right, so a
// return of exactly -15% falls in DeepLoss and exactly 0% in Loss.
func Classify(total Percent) ReturnRange {
	switch {
	case total <= -0.15:
		return DeepLoss
	case total <= 0:
		return Loss
	case total <= 0.15:
		return ModestGain
	case total <= 0.30:
		return StrongGain
	default:
		return Boom
	}
}
