package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

var rawMarkdown = flag.Bool("raw", false, "print reports as markdown source instead of rendering them")

const wordWrap = 100

// printMarkdown renders md for the terminal to stdout.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: cannot render markdown: %v\n", err)
	fmt.Fprint(stdout, md)
}
