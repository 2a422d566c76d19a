package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/docfind"
	"github.com/fwojciec/docfind/fs"
	"github.com/fwojciec/docfind/search"
)

// Run executes the interactive command. Blank lines are ignored; invalid
// keywords are reported and the session continues.
func (c *InteractiveCmd) Run(deps *Dependencies) error {
	if !fs.Exists(c.Dir) {
		fmt.Fprintf(deps.Stderr, "warning: directory %q does not exist\n", c.Dir)
	}

	var readErr error
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(deps.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-deps.Ctx.Done():
				return
			}
		}
		readErr = scanner.Err()
	}()

	for {
		var line string
		var ok bool
		select {
		case <-deps.Ctx.Done():
			return deps.Ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			return readErr
		}

		keyword := strings.TrimSpace(line)
		if keyword == "" {
			continue
		}

		var r search.Result
		select {
		case <-deps.Ctx.Done():
			return deps.Ctx.Err()
		case r = <-search.Async(deps.Ctx, deps.Search, c.Dir, keyword):
		}
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docfind.ErrorMessage(r.Err))
			if docfind.ErrorCode(r.Err) == docfind.EINVALID {
				continue
			}
			return r.Err
		}
		printMatches(deps.Stdout, r.Matches)
	}
}
