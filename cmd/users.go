package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymanager"
	"github.com/etnz/moneymanager/renderer"
	"github.com/google/subcommands"
)

type addUserCmd struct {
	name string
}

func (*addUserCmd) Name() string     { return "add-user" }
func (*addUserCmd) Synopsis() string { return "add a user with a zero balance" }
func (*addUserCmd) Usage() string {
	return `mm add-user -n <name>

  Adds a user. Names are unique, ignoring case and surrounding spaces.
`
}

func (c *addUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "name of the user")
}

func (c *addUserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	name, err := moneymanager.CheckNewUser(s.store.Snapshot(), c.name, s.MaxUsers)
	if err != nil {
		return report(err)
	}
	u, err := s.store.AddUser(ctx, name)
	if u.ID != "" {
		fmt.Fprintf(stdout, "Added user %q (%s)\n", u.Name, u.ID)
	}
	return report(err)
}

type deleteUserCmd struct {
	user string
}

func (*deleteUserCmd) Name() string     { return "delete-user" }
func (*deleteUserCmd) Synopsis() string { return "delete a user and its transactions" }
func (*deleteUserCmd) Usage() string {
	return `mm delete-user -u <name|id>

  Deletes a user and all its transactions. This cannot be undone.
`
}

func (c *deleteUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "name or id of the user")
}

func (c *deleteUserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	err = s.store.DeleteUser(ctx, u.ID)
	fmt.Fprintf(stdout, "Deleted user %q and %d transactions\n", u.Name, len(u.Transactions))
	return report(err)
}

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "display users and their balances" }
func (*usersCmd) Usage() string {
	return `mm users

  Displays every user with its balance, and the total balance.
`
}

func (c *usersCmd) SetFlags(f *flag.FlagSet) {}

func (c *usersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(s.store.Snapshot(), s.Currency)))
	return subcommands.ExitSuccess
}
