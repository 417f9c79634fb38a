package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes the flag values that have a known set of values.
var flagPredictors = map[string]complete.Predictor{
	"config":    predict.Files("*.toml"),
	"data-file": predict.Files("*"),
	"xlsx":      predict.Files("*.xlsx"),
	"format":    predict.Set{"text", "markdown", "html"},
	"currency":  predict.Set{"EUR", "USD", "GBP", "INR", "JPY", "CHF"},
}

// Completion returns the shell completion of the commands registered in c, and of the global flags in top.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(top),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{Flags: predictFlags(f)}
	})
	if topics, err := topicNames(); err == nil {
		if t, ok := root.Sub["topic"]; ok {
			t.Args = predict.Set(topics)
		}
	}
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
