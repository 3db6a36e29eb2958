// Command mm keeps the balances of a handful of people.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/moneymanager/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("mm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, command subcommands.Command) {
		if command.Name() == name {
			found = true
		}
	})
	return found
}
