package slog_test

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/cardtext"
	"github.com/fwojciec/cardtext/mock"
	cardslog "github.com/fwojciec/cardtext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the operation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "**bold**", nil
			},
		}

		c := cardslog.NewLoggingConverter(next, logger)
		md, err := c.Convert("<b>bold</b>")

		require.NoError(t, err)
		assert.Equal(t, "**bold**", md)
		assert.Contains(t, buf.String(), "markdown conversion")
		assert.Contains(t, buf.String(), "input_len=11")
	})

	t.Run("logs the error from the wrapped converter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", cardtext.Errorf(cardtext.EINVALID, "empty field input")
			},
		}

		c := cardslog.NewLoggingConverter(next, logger)
		_, err := c.Convert("")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "empty field input")
	})
}

func TestLoggingMediaLister_ListMedia(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.MediaLister{
			ListMediaFn: func(html string) ([]string, error) {
				return []string{"a.jpg", "b.mp3"}, nil
			},
		}

		l := cardslog.NewLoggingMediaLister(next, logger)
		files, err := l.ListMedia(`<img src="a.jpg">[sound:b.mp3]`)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg", "b.mp3"}, files)
		assert.Contains(t, buf.String(), "media listing")
		assert.Contains(t, buf.String(), "count=2")
	})
}
