package main

import (
	"fmt"

	"github.com/fwojciec/cardtext"
)

// Run executes the speech command.
func (c *SpeechCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, cardtext.StripHTMLForSpeech(cardtext.StripAVTags(text)))
	return nil
}
