package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/safehaven"
	"github.com/etnz/safehaven/renderer"
	"github.com/google/subcommands"
)

type kellyCmd struct {
	faces       string
	weights     string
	anchorFaces string
	diceWeight  float64
}

func (*kellyCmd) Name() string { return "kelly" }
func (*kellyCmd) Synopsis() string {
	return "evaluate the cost and net effect of anchoring a dice bet with cash"
}
func (*kellyCmd) Usage() string {
	return `shv kelly [-faces <multipliers>] [-weights <counts>] [-w <dice weight>]

  Computes the arithmetic and geometric average returns of a dice bet,
  of a cash anchor, and of their blend at the given dice weight. The
  blend costs arithmetic return but can raise the geometric one, which
  is what compounds.

Usage Examples:
# The 50/50 dice and cash blend.
$ shv kelly -w 0.5

`
}

func (c *kellyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.faces, "faces", "0.5,1.05,1.5", "Dice faces as comma-separated wealth multipliers.")
	f.StringVar(&c.weights, "weights", "1,4,1", "One weight per face, the number of sides showing it.")
	f.StringVar(&c.anchorFaces, "anchor", "1.0", "Anchor faces, a single 1.0 is plain cash.")
	f.Float64Var(&c.diceWeight, "w", 0.5, "Fraction of wealth on the dice, the rest on the anchor.")
}

func (c *kellyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dice, err := parseBet("dice", c.faces, c.weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid dice bet: %v\n", err)
		return subcommands.ExitUsageError
	}
	anchor, err := parseBet("cash", c.anchorFaces, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid anchor: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := safehaven.Kelly(dice, anchor, c.diceWeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.KellyMarkdown(report))
	return subcommands.ExitSuccess
}
