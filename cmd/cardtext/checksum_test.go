package main_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/cardtext"
	main "github.com/fwojciec/cardtext/cmd/cardtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints checksums in input order", func(t *testing.T) {
		t.Parallel()

		a := writeTempFile(t, "front")
		b := writeTempFile(t, "back")
		deps, stdout, _ := newDeps("")

		cmd := &main.ChecksumCmd{Files: []string{a, b}, Concurrency: 4}
		err := cmd.Run(deps)

		require.NoError(t, err)
		want := fmt.Sprintf("%016x  %s\n%016x  %s\n",
			cardtext.FieldChecksum("front"), a,
			cardtext.FieldChecksum("back"), b)
		assert.Equal(t, want, stdout.String())
	})

	t.Run("returns error when a file is missing", func(t *testing.T) {
		t.Parallel()

		a := writeTempFile(t, "front")
		deps, _, _ := newDeps("")

		cmd := &main.ChecksumCmd{Files: []string{a, "/nonexistent/field.txt"}, Concurrency: 4}
		err := cmd.Run(deps)

		require.Error(t, err)
	})
}
