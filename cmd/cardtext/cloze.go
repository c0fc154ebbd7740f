package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fwojciec/cardtext"
)

// Run executes the cloze command.
func (c *ClozeCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	for _, n := range slices.Sorted(maps.Keys(cardtext.ClozeNumbers(text))) {
		fmt.Fprintln(deps.Stdout, n)
	}
	return nil
}
