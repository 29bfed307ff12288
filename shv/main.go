package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/safehaven/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completer derives shell completion from the registered commands and
// their flags.
func completer() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		flags := make(map[string]complete.Predictor)
		fs.VisitAll(func(f *flag.Flag) { flags[f.Name] = predict.Something })
		sub[c.Name()] = &complete.Command{Flags: flags}
	}
	return &complete.Command{Sub: sub}
}

func main() {
	completer().Complete("shv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
