package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cardtext/bluemonday"
	"github.com/fwojciec/cardtext/goquery"
	"github.com/fwojciec/cardtext/htmltomarkdown"
	cardslog "github.com/fwojciec/cardtext/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cardtext"),
		kong.Description("Process flashcard field text: strip markup, extract AV tags, cloze numbers, and checksums."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cardtext --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Quiet by default; -v routes structured logs to stderr.
	logOut := io.Discard
	if cli.Verbose {
		logOut = stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	deps.Sanitizer = bluemonday.NewSanitizer()
	deps.Media = cardslog.NewLoggingMediaLister(goquery.NewMediaLister(), logger)
	deps.Converter = cardslog.NewLoggingConverter(htmltomarkdown.NewConverter(), logger)

	return kongCtx.Run(deps)
}
