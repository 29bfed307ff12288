package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/etnz/safehaven"
	md "github.com/nao1215/markdown"
)

// WalkMarkdown renders the Monte Carlo random walk report: percentile
// ending wealth and the distribution of per-walk geometric returns.
func WalkMarkdown(r *safehaven.WalkResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Random Walks: %s", r.Bet.Name))
	doc.PlainText(fmt.Sprintf("%d walks of %d rolls each, starting wealth 1.", r.Walks, r.Rolls))

	doc.H2("Ending Wealth")
	doc.Table(md.TableSet{
		Header: []string{"Percentile", "Wealth"},
		Rows: [][]string{
			{"5th", wealth(r.EndingWealth(5))},
			{"Median", wealth(r.EndingWealth(50))},
			{"95th", wealth(r.EndingWealth(95))},
		},
	})

	doc.H2("Geometric Average Return")
	lo, hi := r.Interval(5, 95)
	doc.PlainText(fmt.Sprintf("Expected (geometric mean of the bet): %s. 90%% of walks landed between %s and %s.",
		r.ExpectedReturn, lo, hi))
	doc.Table(md.TableSet{
		Header: []string{"Return", "Walks", "Frequency"},
		Rows:   histogram(r.GeometricReturns, 10),
	})

	return doc.String()
}

// histogram buckets the per-walk returns into bins and renders one
// table row per bin with a scaled bar.
func histogram(returns []safehaven.Percent, bins int) [][]string {
	if len(returns) == 0 || bins < 1 {
		return nil
	}
	min, max := float64(returns[0]), float64(returns[0])
	for _, g := range returns {
		v := float64(g)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	width := (max - min) / float64(bins)
	if width == 0 {
		// all walks compounded to the same return
		return [][]string{{safehaven.Percent(min).String(), fmt.Sprintf("%d", len(returns)), bar(20)}}
	}

	counts := make([]int, bins)
	for _, g := range returns {
		i := int((float64(g) - min) / width)
		if i == bins { // max value belongs to the last bin
			i = bins - 1
		}
		counts[i]++
	}
	peak := 0
	for _, n := range counts {
		if n > peak {
			peak = n
		}
	}

	rows := make([][]string, 0, bins)
	for i, n := range counts {
		center := safehaven.Percent(min + (float64(i)+0.5)*width)
		rows = append(rows, []string{center.String(), fmt.Sprintf("%d", n), scaledBar(float64(n), float64(peak), 20)})
	}
	return rows
}
