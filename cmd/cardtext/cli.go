package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/cardtext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Sanitizer cardtext.Sanitizer
	Media     cardtext.MediaLister
	Converter cardtext.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Strip    StripCmd    `cmd:"" help:"Strip AV directives and HTML markup from field text"`
	Speech   SpeechCmd   `cmd:"" help:"Prepare field text for speech synthesis"`
	AVTags   AVTagsCmd   `cmd:"" name:"avtags" help:"List parsed audio/TTS directives"`
	Cloze    ClozeCmd    `cmd:"" help:"List distinct cloze-deletion numbers"`
	Checksum ChecksumCmd `cmd:"" help:"Compute field checksums"`
	Markdown MarkdownCmd `cmd:"" help:"Convert field HTML to Markdown"`
	Sanitize SanitizeCmd `cmd:"" help:"Strip untrusted markup from pasted field content"`
	Media    MediaCmd    `cmd:"" help:"List media files referenced by a field"`
}

// StripCmd is the "strip" subcommand.
type StripCmd struct {
	File   string `arg:"" optional:"" help:"Field text file (stdin when omitted)"`
	Flag   bool   `help:"Replace AV directives with [anki:play]N[/anki:play] placeholders instead of removing them"`
	Decode bool   `short:"d" help:"Also decode HTML entities"`
}

// SpeechCmd is the "speech" subcommand.
type SpeechCmd struct {
	File string `arg:"" optional:"" help:"Field text file (stdin when omitted)"`
}

// AVTagsCmd is the "avtags" subcommand.
type AVTagsCmd struct {
	File string `arg:"" optional:"" help:"Field text file (stdin when omitted)"`
}

// ClozeCmd is the "cloze" subcommand.
type ClozeCmd struct {
	File string `arg:"" optional:"" help:"Field text file (stdin when omitted)"`
}

// ChecksumCmd is the "checksum" subcommand.
type ChecksumCmd struct {
	Files       []string `arg:"" help:"Field text files"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent read limit"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	File string `arg:"" optional:"" help:"Field text file (stdin when omitted)"`
}

// SanitizeCmd is the "sanitize" subcommand.
type SanitizeCmd struct {
	File string `arg:"" optional:"" help:"Field text file (stdin when omitted)"`
}

// MediaCmd is the "media" subcommand.
type MediaCmd struct {
	File string `arg:"" optional:"" help:"Field text file (stdin when omitted)"`
}

// readInput returns the contents of path, or of stdin when path is empty
// or "-".
func readInput(deps *Dependencies, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}
