// Package cmd implements the shv CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/safehaven"
	"github.com/google/subcommands"
)

// Commands lists the subcommands. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&returnsCmd{},
	&kellyCmd{},
	&demonCmd{},
	&wagerCmd{},
	&recoveryCmd{},
	&xoCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global defaults.

const (
	defaultSeriesFile      = "output/sp500.csv"
	defaultCredentialsFile = "notebooks/credentials.txt"
)

// printMarkdown renders markdown for the terminal. On rendering errors
// the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// loadSeries reads the annual return series, pointing the user at fetch
// when the file is missing.
func loadSeries(path string) (*safehaven.Series, error) {
	s, err := safehaven.LoadSeries(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no return series at %q, run 'shv fetch' first", path)
		}
		return nil, err
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("empty return series in %q, run 'shv fetch' first", path)
	}
	return s, nil
}

// parseFaces parses a comma-separated list of wealth multipliers.
func parseFaces(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	faces := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid face %q: %w", p, err)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// parseWeights parses a comma-separated list of face weights.
func parseWeights(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	weights := make([]int, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		weights = append(weights, w)
	}
	return weights, nil
}

// parseBet builds a bet from the -faces and -weights flag values. An
// empty weights value means even odds.
func parseBet(name, faces, weights string) (safehaven.Bet, error) {
	f, err := parseFaces(faces)
	if err != nil {
		return safehaven.Bet{}, err
	}
	if strings.TrimSpace(weights) == "" {
		return safehaven.EvenOdds(name, f...)
	}
	w, err := parseWeights(weights)
	if err != nil {
		return safehaven.Bet{}, err
	}
	return safehaven.NewBet(name, f, w)
}
