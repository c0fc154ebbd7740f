package main

import (
	"fmt"

	"github.com/fwojciec/cardtext"
)

// Run executes the media command.
func (c *MediaCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	files, err := deps.Media.ListMedia(text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardtext.ErrorMessage(err))
		return err
	}

	for _, f := range files {
		fmt.Fprintln(deps.Stdout, f)
	}
	return nil
}
