package main

import "fmt"

// Run executes the sanitize command.
func (c *SanitizeCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Sanitizer.Sanitize(text))
	return nil
}
