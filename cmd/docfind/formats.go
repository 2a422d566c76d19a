package main

import "fmt"

// Run executes the formats command.
func (c *FormatsCmd) Run(deps *Dependencies) error {
	for _, ext := range deps.Formats.Extensions() {
		fmt.Fprintln(deps.Stdout, ext)
	}
	return nil
}
