package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between from and to, included.
func NewRange(from, to Date) (Range, error) {
	if to.Before(from) {
		return Range{}, fmt.Errorf("invalid range: %s is after %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Years returns the range covering full years from y0 to y1 included.
func Years(y0, y1 int) Range {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Range{From: New(y0, 1, 1), To: New(y1, 12, 31)}
}

// Contains reports whether day is included in the range, boundaries included.
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
