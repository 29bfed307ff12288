package cmd

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/etnz/safehaven"
	"github.com/etnz/safehaven/renderer"
	"github.com/google/subcommands"
)

type demonCmd struct {
	faces   string
	weights string
	walks   int
	rolls   int
	seed    uint64
}

func (*demonCmd) Name() string { return "demon" }
func (*demonCmd) Synopsis() string {
	return "run Monte Carlo random walks of a repeated dice bet"
}
func (*demonCmd) Usage() string {
	return `shv demon [-faces <multipliers>] [-weights <counts>] [-walks <n>] [-rolls <n>] [-seed <n>]

  Compounds the bet roll after roll over many independent walks and
  reports the percentile wealth paths and the distribution of the
  geometric average return per walk. The same seed reproduces the same
  walks.
`
}

func (c *demonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.faces, "faces", "0.5,1.05,1.5", "Dice faces as comma-separated wealth multipliers.")
	f.StringVar(&c.weights, "weights", "1,4,1", "One weight per face, the number of sides showing it.")
	f.IntVar(&c.walks, "walks", 10000, "Number of independent walks.")
	f.IntVar(&c.rolls, "rolls", 300, "Number of rolls per walk.")
	f.Uint64Var(&c.seed, "seed", 0, "Random seed, 0 picks a fresh one.")
}

func (c *demonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bet, err := parseBet("dice", c.faces, c.weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid bet: %v\n", err)
		return subcommands.ExitUsageError
	}

	seed := c.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	result, err := safehaven.RandomWalks(rng, c.walks, c.rolls, bet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WalkMarkdown(result))
	return subcommands.ExitSuccess
}
