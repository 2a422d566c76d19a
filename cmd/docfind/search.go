package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docfind"
	"github.com/fwojciec/docfind/fs"
)

const noMatchesMessage = "No files found with the keyword."

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Dir != "" && !fs.Exists(c.Dir) {
		fmt.Fprintf(deps.Stderr, "warning: directory %q does not exist\n", c.Dir)
	}

	matches, err := deps.Search.Search(deps.Ctx, c.Dir, c.Keyword)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfind.ErrorMessage(err))
		return err
	}

	printMatches(deps.Stdout, matches)
	return nil
}

func printMatches(w io.Writer, matches []*docfind.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, noMatchesMessage)
		return
	}
	fmt.Fprintln(w, docfind.FormatMatches(matches))
}
