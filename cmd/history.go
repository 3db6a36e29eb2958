package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymanager/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	user string
	head int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display a user's transactions" }
func (*historyCmd) Usage() string {
	return `mm history -u <name|id> [-head <n>]

  Displays the transactions of a user, most recent first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "name or id of the user")
	f.IntVar(&c.head, "head", 0, "Show only the N most recent transactions.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head < 0 {
		fmt.Fprintln(os.Stderr, "Error: -head must not be negative.")
		return subcommands.ExitUsageError
	}
	s, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	u, err := s.lookup(c.user)
	if err != nil {
		return report(err)
	}
	printMarkdown(renderer.RenderHistory(renderer.NewHistory(u, s.Currency, now(), c.head)))
	return subcommands.ExitSuccess
}
