package main

import (
	"fmt"

	"github.com/fwojciec/cardtext"
)

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	md, err := deps.Converter.Convert(text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardtext.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
