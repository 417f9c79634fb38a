package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashflow/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Answers the shell completion requests, when COMP_LINE is set.
	cmd.Completion(commander, flag.CommandLine).Complete("cfc")

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
