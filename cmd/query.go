package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymanager"
	"github.com/google/subcommands"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the ledger" }
func (*queryCmd) Usage() string {
	return `mm query -path <jsonpath>

  Evaluates a JSONPath expression against the stored document and prints the
  result as JSON.

Usage Examples:
# Names of all users.
$ mm query -path '$.users[*].name'

# Users in debt.
$ mm query -path '$.users[?(@.balance < 0)].name'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "$", "JSONPath expression")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	result, err := moneymanager.Query(s.store.Snapshot(), c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
