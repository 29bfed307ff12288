package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/safehaven"
	"github.com/etnz/safehaven/date"
	"github.com/etnz/safehaven/nasdaq"
	"github.com/google/subcommands"
)

const nasdaq_api_key = "NASDAQ_API_KEY"

// fetchCmd implements the "fetch" command.
type fetchCmd struct {
	apiKeyFlag  string
	credentials string
	priceCode   string
	yieldCode   string
	output      string
	start       int
	end         int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches S&P 500 prices and yields from Nasdaq Data Link" }
func (*fetchCmd) Usage() string {
	return `shv fetch [-start <year>] [-end <year>] [-o <file>]

  Fetches the S&P 500 monthly price and dividend yield datasets from
  data.nasdaq.com, resamples them to annual total returns, classifies
  each year into its return range and writes the series as CSV.

  Requires a Nasdaq Data Link API key, resolved from the -api-key flag,
  the ` + nasdaq_api_key + ` environment variable or the credentials file.

Usage Examples:
# Writes the series to the default output/sp500.csv.
$ shv fetch

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKeyFlag, "api-key", "", "Nasdaq Data Link API key. This flag takes precedence over the "+nasdaq_api_key+" environment variable. You can get one at https://data.nasdaq.com/")
	f.StringVar(&c.credentials, "credentials", defaultCredentialsFile, "File holding the API key, read when neither the flag nor the environment variable is set.")
	f.StringVar(&c.priceCode, "price-code", nasdaq.PriceCode, "Dataset code for the S&P 500 price series.")
	f.StringVar(&c.yieldCode, "yield-code", nasdaq.YieldCode, "Dataset code for the S&P 500 dividend yield series.")
	f.StringVar(&c.output, "o", defaultSeriesFile, "File to write the annual return series to.")
	f.IntVar(&c.start, "start", 1900, "First year to fetch.")
	f.IntVar(&c.end, "end", date.Today().Year(), "Last year to fetch.")
}

// apiKey resolves the Nasdaq API key: flag, then environment, then
// credentials file.
func (c *fetchCmd) apiKey() (string, error) {
	if c.apiKeyFlag != "" {
		return c.apiKeyFlag, nil
	}
	if key := os.Getenv(nasdaq_api_key); key != "" {
		return key, nil
	}
	key, err := nasdaq.ReadKeyFile(c.credentials)
	if err != nil {
		return "", fmt.Errorf("no API key: use -api-key, set %s, or put the key in %q: %w", nasdaq_api_key, c.credentials, err)
	}
	return key, nil
}

// capEnd lowers the end year to the price dataset's newest available
// observation, so the default end year does not ask the API for data it
// does not have yet. Metadata errors are left for the fetch to surface.
func (c *fetchCmd) capEnd(client *nasdaq.Client) {
	newest, err := client.NewestAvailable(c.priceCode)
	if err != nil {
		return
	}
	if newest.Year() < c.end {
		c.end = newest.Year()
	}
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := c.apiKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.start > c.end {
		fmt.Fprintf(os.Stderr, "Error: start year %d is after end year %d\n", c.start, c.end)
		return subcommands.ExitUsageError
	}

	client := nasdaq.NewClient(key)
	c.capEnd(client)
	r := date.Years(c.start, c.end)

	prices, yields, err := client.Fetch(c.priceCode, c.yieldCode, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch from data.nasdaq.com: %v\n", err)
		return subcommands.ExitFailure
	}

	series, err := safehaven.BuildSeries(prices, yields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not build the return series: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := safehaven.SaveSeries(c.output, series); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing series file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	first, _ := series.First()
	last, _ := series.Last()
	fmt.Printf("Successfully wrote %d annual returns (%d-%d) to %s\n", series.Len(), first.Year, last.Year, c.output)
	return subcommands.ExitSuccess
}
