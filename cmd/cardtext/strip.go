package main

import (
	"fmt"

	"github.com/fwojciec/cardtext"
)

// Run executes the strip command.
func (c *StripCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	if c.Flag {
		text = cardtext.FlagAVTags(text)
	} else {
		text = cardtext.StripAVTags(text)
	}
	text = cardtext.StripHTML(text)
	if c.Decode {
		text = cardtext.DecodeEntities(text)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
