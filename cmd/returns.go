package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/safehaven/renderer"
	"github.com/google/subcommands"
)

type returnsCmd struct {
	seriesFile string
}

func (*returnsCmd) Name() string { return "returns" }
func (*returnsCmd) Synopsis() string {
	return "display the frequency distribution of SPX annual total returns"
}
func (*returnsCmd) Usage() string {
	return `shv returns [-series <file>]

  Loads the annual return series and prints the frequency distribution
  of the S&P 500 annual total returns by return range, with the lowest,
  mean and highest return observed in each range.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seriesFile, "series", defaultSeriesFile, "File holding the annual return series.")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := loadSeries(c.seriesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DistributionMarkdown(series))
	return subcommands.ExitSuccess
}
