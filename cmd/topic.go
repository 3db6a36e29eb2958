package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/moneymanager/docs"
	"github.com/google/subcommands"
)

// topicCmd prints pages of the embedded manual.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the user manual" }
func (*topicCmd) Usage() string {
	return `mm topic [-list] [<topic>...]

  Prints the named pages of the manual, or its index when none is given.
  '*' prints every page.

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "print the topic names, one per line")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	known, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		for _, name := range known {
			fmt.Fprintln(stdout, name)
		}
		return subcommands.ExitSuccess
	}

	pages := f.Args()
	if len(pages) == 0 {
		pages = []string{docs.Index}
	}
	for _, page := range pages {
		if page != "*" && page != docs.Index && !slices.Contains(known, page) {
			fmt.Fprintf(os.Stderr, "Error: no topic %q, try one of: %s\n", page, strings.Join(known, ", "))
			return subcommands.ExitUsageError
		}
	}

	content, err := docs.GetTopics(pages...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
