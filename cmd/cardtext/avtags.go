package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/cardtext"
)

// Run executes the avtags command.
func (c *AVTagsCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	i := 0
	for tag := range cardtext.AVTags(text) {
		switch tag := tag.(type) {
		case cardtext.SoundOrVideo:
			fmt.Fprintf(deps.Stdout, "%d. sound %s\n", i, tag.Filename)
		case cardtext.TextToSpeech:
			fmt.Fprintf(deps.Stdout, "%d. tts lang=%s voices=%s args=%s text=%q\n",
				i, tag.Lang, strings.Join(tag.Voices, ","), strings.Join(tag.OtherArgs, " "), tag.FieldText)
		}
		i++
	}

	if i == 0 {
		fmt.Fprintln(deps.Stderr, "no AV directives found")
	}
	return nil
}
