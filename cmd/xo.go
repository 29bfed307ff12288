package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/safehaven"
	"github.com/etnz/safehaven/renderer"
	"github.com/google/subcommands"
)

type xoCmd struct {
	seriesFile string
	profile    string
	payoffs    string
	allocation float64
}

func (*xoCmd) Name() string { return "xo" }
func (*xoCmd) Synopsis() string {
	return "compare the SPX returns against a safe haven profile and their blend"
}
func (*xoCmd) Usage() string {
	return `shv xo [-profile <name>] [-allocation <fraction>] [-series <file>]

  Blends a safe haven payoff profile into the S&P 500 at the given
  allocation and reports, per return range, how often the index landed
  there, what it returned, what the haven pays and what the blend makes.

  Profiles: ` + profileNames() + `
`
}

func profileNames() string {
	names := make([]string, 0, len(safehaven.Prototypes()))
	for _, p := range safehaven.Prototypes() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func (c *xoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seriesFile, "series", defaultSeriesFile, "File holding the annual return series.")
	f.StringVar(&c.profile, "profile", safehaven.Insurance.Name, "Safe haven profile to blend in: "+profileNames()+".")
	f.StringVar(&c.payoffs, "payoffs", "", "Custom profile as five comma-separated payoffs, crash bucket first. Overrides -profile.")
	f.Float64Var(&c.allocation, "allocation", 0.1, "Fraction of the portfolio allocated to the safe haven.")
}

// selectedProfile returns the custom profile from -payoffs, or the
// named prototype.
func (c *xoCmd) selectedProfile() (safehaven.Profile, error) {
	if c.payoffs != "" {
		payoffs, err := parseFaces(c.payoffs)
		if err != nil {
			return safehaven.Profile{}, err
		}
		return safehaven.NewProfile("custom", "Custom Payoff Profile", payoffs)
	}
	profile, ok := safehaven.LookupProfile(c.profile)
	if !ok {
		return safehaven.Profile{}, fmt.Errorf("unknown profile %q, want one of %s", c.profile, profileNames())
	}
	return profile, nil
}

func (c *xoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile, err := c.selectedProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	series, err := loadSeries(c.seriesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	comparison, err := safehaven.Compare(series, profile, c.allocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ComparisonMarkdown(comparison))
	return subcommands.ExitSuccess
}
