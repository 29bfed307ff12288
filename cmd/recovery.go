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

type recoveryCmd struct {
	loss float64
}

func (*recoveryCmd) Name() string { return "recovery" }
func (*recoveryCmd) Synopsis() string {
	return "compute the profit needed to get back to even after a loss"
}
func (*recoveryCmd) Usage() string {
	return `shv recovery [-loss <fraction>]

  Computes the profit required to recover a loss assuming geometric
  growth. Losses compound against you: a -50% loss takes +100% to
  recover, a total loss is unrecoverable.

Usage Examples:
$ shv recovery -loss -0.5

`
}

func (c *recoveryCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.loss, "loss", -0.5, "The loss as a fraction, -0.5 means -50%.")
}

func (c *recoveryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loss := safehaven.Percent(c.loss)
	profit, err := safehaven.RecoveryProfit(loss)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RecoveryMarkdown(loss, profit))
	return subcommands.ExitSuccess
}
