package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/cardtext"
	"golang.org/x/sync/errgroup"
)

// Run executes the checksum command. Files are read and hashed
// concurrently; output stays in input order.
func (c *ChecksumCmd) Run(deps *Dependencies) error {
	sums := make([]uint64, len(c.Files))

	g, _ := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, path := range c.Files {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", path, err)
			}
			sums[i] = cardtext.FieldChecksum(string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range c.Files {
		fmt.Fprintf(deps.Stdout, "%016x  %s\n", sums[i], path)
	}
	return nil
}
