package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/safehaven"
	md "github.com/nao1215/markdown"
)

// KellyMarkdown renders the dice-and-cash blending report.
func KellyMarkdown(r *safehaven.KellyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Xs and Os Profile: The Kelly Criterion")
	doc.PlainText(fmt.Sprintf("Blending %s of %q with %s of %q, rebalanced every roll.",
		r.DiceWeight, r.Dice.Name, 1-r.DiceWeight, r.Anchor.Name))

	doc.Table(md.TableSet{
		Header: []string{"", "Arithmetic Avg", "Geometric Avg"},
		Rows: [][]string{
			{r.Dice.Name, r.DiceStats.Arithmetic.SignedString(), r.DiceStats.Geometric.SignedString()},
			{r.Anchor.Name, r.AnchorStats.Arithmetic.SignedString(), r.AnchorStats.Geometric.SignedString()},
			{"blended", r.BlendedStats.Arithmetic.SignedString(), r.BlendedStats.Geometric.SignedString()},
		},
	})

	doc.H2("Cost and Net Effect")
	doc.Table(md.TableSet{
		Header: []string{"Cost (arithmetic)", "Net (geometric)"},
		Rows: [][]string{
			{r.Cost.SignedString(), r.Net.SignedString()},
		},
	})
	if r.Net > 0 {
		doc.PlainText("The anchor costs arithmetic average but earns more geometric average back: the blend compounds faster than the dice alone.")
	} else {
		doc.PlainText("The anchor does not pay for itself at this weight.")
	}

	return doc.String()
}
