package cardtext_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/cardtext"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code from application error", func(t *testing.T) {
		t.Parallel()

		err := cardtext.Errorf(cardtext.EINVALID, "bad input")
		assert.Equal(t, cardtext.EINVALID, cardtext.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("outer: %w", cardtext.Errorf(cardtext.ENOTFOUND, "missing"))
		assert.Equal(t, cardtext.ENOTFOUND, cardtext.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, cardtext.EINTERNAL, cardtext.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", cardtext.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message from application error", func(t *testing.T) {
		t.Parallel()

		err := cardtext.Errorf(cardtext.EINVALID, "bad %s", "input")
		assert.Equal(t, "bad input", cardtext.ErrorMessage(err))
	})

	t.Run("returns generic message for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", cardtext.ErrorMessage(errors.New("boom")))
	})
}
