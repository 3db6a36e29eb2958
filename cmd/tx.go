package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymanager"
	"github.com/google/subcommands"
)

// txCmd records a credit or a debit, depending on kind.
type txCmd struct {
	kind   moneymanager.Kind
	user   string
	amount string
	reason string
}

func (c *txCmd) Name() string { return c.kind.String() }
func (c *txCmd) Synopsis() string {
	if c.kind == moneymanager.Credit {
		return "add money to a user's balance"
	}
	return "take money from a user's balance"
}
func (c *txCmd) Usage() string {
	return fmt.Sprintf(`mm %s -u <name|id> -a <amount> -r <reason>

  %s. The amount is a positive decimal number, e.g. 12.50.
`, c.Name(), c.Synopsis())
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "name or id of the user")
	f.StringVar(&c.amount, "a", "", "amount, a positive decimal number")
	f.StringVar(&c.reason, "r", "", "reason for the transaction")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := moneymanager.ParseAmount(c.amount)
	if err != nil {
		return report(err)
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
	tx, err := s.store.AddTransaction(ctx, u.ID, amount, c.reason, c.kind)
	if tx.ID != "" {
		u, _ = s.store.User(u.ID)
		fmt.Fprintf(stdout, "%s %s for %q, balance %s\n",
			c.kind, moneymanager.M(tx.Signed(), s.Currency).SignedString(), tx.Reason,
			moneymanager.M(u.Balance, s.Currency))
	}
	return report(err)
}
