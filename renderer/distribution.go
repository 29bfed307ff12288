package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/safehaven"
	md "github.com/nao1215/markdown"
)

// DistributionMarkdown renders the frequency distribution of the annual
// total returns, and the per-range return statistics.
func DistributionMarkdown(s *safehaven.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	first, _ := s.First()
	last, _ := s.Last()
	doc.H1(fmt.Sprintf("Frequency Distribution of SPX Annual Returns, %d-%d", first.Year, last.Year))
	doc.PlainText(fmt.Sprintf("%d years of price return plus dividend yield.", s.Len()))

	dist := s.Distribution()
	rows := make([][]string, 0, len(safehaven.Ranges()))
	for _, rng := range safehaven.Ranges() {
		n := dist[rng]
		rows = append(rows, []string{rng.String(), fmt.Sprintf("%d", n), bar(n)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Yearly Return", "Years", "Frequency"},
		Rows:   rows,
	})

	doc.H2("Return Ranges")
	stats := s.Stats()
	rows = rows[:0]
	for _, rng := range safehaven.Ranges() {
		st, ok := stats[rng]
		if !ok {
			rows = append(rows, []string{rng.String(), "-", "-", "-"})
			continue
		}
		rows = append(rows, []string{rng.String(), percent(st.Min), percent(st.Mean), percent(st.Max)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Range", "Min", "Mean", "Max"},
		Rows:   rows,
	})

	return doc.String()
}
