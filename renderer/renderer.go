// Package renderer turns the study's reports into markdown.
package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/safehaven"
)

// bar renders a counting bar for text histograms.
func bar(n int) string { return strings.Repeat("█", n) }

// scaledBar renders a bar of at most width cells for value within [0, max].
func scaledBar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / max * float64(width)))
	if n == 0 {
		n = 1 // a non-zero value always shows
	}
	return bar(n)
}

// wealth formats a compounded wealth multiple for the walk reports:
// large values with thousands separators, small ones with the digits
// that matter.
func wealth(x float64) string {
	if x >= 1000 {
		s := fmt.Sprintf("%.0f", x)
		var b strings.Builder
		for i, r := range s {
			if i > 0 && (len(s)-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteRune(r)
		}
		return b.String()
	}
	if x >= 1 {
		return fmt.Sprintf("%.2f", x)
	}
	return fmt.Sprintf("%.2g", x)
}

// percent formats a Percent for table cells, "+Inf" safe.
func percent(p safehaven.Percent) string {
	if math.IsInf(float64(p), 1) {
		return "∞"
	}
	return p.String()
}
