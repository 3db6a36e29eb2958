package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/moneymanager"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the stored document" }
func (*exportCmd) Usage() string {
	return `mm export [-o <file>]

  Prints the whole ledger in its storage format. It can be loaded back with
  'mm import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "-", "output file, '-' for stdout")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	var w io.Writer = stdout
	if c.output != "-" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := moneymanager.Encode(w, s.store.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	input string
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with a document" }
func (*importCmd) Usage() string {
	return `mm import -f <file> [-force]

  Replaces the ledger with the content of a file written by 'mm export'.
  Files saved by the browser version of money manager are accepted too,
  their balances are recomputed from the transactions.

  A ledger that already has users is only replaced with -force.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "f", "", "input file, '-' for stdin")
	f.BoolVar(&c.force, "force", false, "replace a ledger that is not empty")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required.")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if c.input != "-" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}
	users, err := moneymanager.Decode(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	s, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if n := len(s.store.Snapshot()); n > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "Error: the ledger has %d users, use -force to replace it.\n", n)
		return subcommands.ExitUsageError
	}
	err = s.store.Replace(ctx, users)
	if err == nil {
		fmt.Fprintf(stdout, "Imported %d users\n", len(users))
	}
	return report(err)
}
