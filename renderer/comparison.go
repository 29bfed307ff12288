package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/safehaven"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders the SPX versus safe haven comparison: for
// each return range, how the index behaved, what the haven pays there,
// and what the blended portfolio makes.
func ComparisonMarkdown(c *safehaven.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(c.Profile.Title)
	doc.PlainText(fmt.Sprintf("Portfolio: %s SPX, %s %s.", 1-c.Allocation, c.Allocation, c.Profile.Name))

	rows := make([][]string, 0, len(c.Rows))
	for _, row := range c.Rows {
		spx := "-"
		if row.Years > 0 {
			spx = fmt.Sprintf("%s / %s / %s", percent(row.SPX.Min), percent(row.SPX.Mean), percent(row.SPX.Max))
		}
		rows = append(rows, []string{
			row.Range.String(),
			fmt.Sprintf("%d", row.Years),
			spx,
			row.Haven.SignedString(),
			row.Blended.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"SPX Return", "Years", "SPX Min/Mean/Max", c.Profile.Name, "Blended"},
		Rows:   rows,
	})

	return doc.String()
}
