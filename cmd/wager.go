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

type wagerCmd struct {
	wealth   float64
	bet      float64
	rounds   int
	currency string
}

func (*wagerCmd) Name() string { return "wager" }
func (*wagerCmd) Synopsis() string {
	return "value the Petersburg wager by its expected ending wealth"
}
func (*wagerCmd) Usage() string {
	return `shv wager [-wealth <amount>] [-bet <amount>] [-rounds <n>]

  Values a Petersburg-style wager with doubling payoffs: the worth of
  the bet is the geometric expectation of the ending wealth, not the
  arithmetic one. Scans every whole bet size up to the full wealth and
  reports the one with the highest value.
`
}

func (c *wagerCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.wealth, "wealth", 100000, "Starting total wealth.")
	f.Float64Var(&c.bet, "bet", 10, "Size of the bet to value.")
	f.IntVar(&c.rounds, "rounds", 30, "Number of doubling rounds in the wager.")
	f.StringVar(&c.currency, "currency", "USD", "Currency for the amounts.")
}

func (c *wagerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rounds < 1 {
		fmt.Fprintf(os.Stderr, "Error: want at least 1 round, got %d\n", c.rounds)
		return subcommands.ExitUsageError
	}
	payoffs := safehaven.PetersburgPayoffs(c.rounds)
	report, err := safehaven.Wager(payoffs, safehaven.M(c.wealth, c.currency), safehaven.M(c.bet, c.currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WagerMarkdown(report))
	return subcommands.ExitSuccess
}
