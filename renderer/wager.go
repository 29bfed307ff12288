package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/safehaven"
	md "github.com/nao1215/markdown"
)

// WagerMarkdown renders Bernoulli's valuation of a wager.
func WagerMarkdown(r *safehaven.WagerReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("The Search for the Fair Value of the Petersburg Wager")
	doc.PlainText(fmt.Sprintf("Starting total wealth: %s.", r.Wealth))

	doc.Table(md.TableSet{
		Header: []string{"Bet", "Expected Ending Wealth", "Premium"},
		Rows: [][]string{
			{r.Bet.String(), r.Value.String(), r.Premium.String()},
		},
	})

	doc.H2("Optimal Bet")
	doc.Table(md.TableSet{
		Header: []string{"Bet", "Fraction of Wealth", "Expected Ending Wealth"},
		Rows: [][]string{
			{r.OptimalBet.String(), percent(r.OptimalFraction), r.OptimalValue.String()},
		},
	})

	return doc.String()
}

// RecoveryMarkdown renders the insidious wealth tax: the profit needed
// to get back to even after a loss.
func RecoveryMarkdown(loss, profit safehaven.Percent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("An Insidious Wealth Tax")
	doc.PlainText("The greater the loss, the greater the profit needed to get back to even.")
	doc.Table(md.TableSet{
		Header: []string{"Loss", "Profit to Get Back to Even"},
		Rows: [][]string{
			{percent(loss), percent(profit)},
		},
	})

	return doc.String()
}
