package goquery_test

import (
	"testing"

	"github.com/fwojciec/cardtext"
	"github.com/fwojciec/cardtext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MediaLister implements cardtext.MediaLister at compile time.
var _ cardtext.MediaLister = (*goquery.MediaLister)(nil)

func TestMediaLister_ListMedia(t *testing.T) {
	t.Parallel()

	t.Run("lists image references", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewMediaLister()
		files, err := l.ListMedia(`front <img src="a.jpg"> back <img src="b.png">`)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg", "b.png"}, files)
	})

	t.Run("lists audio and object references", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewMediaLister()
		files, err := l.ListMedia(`<audio src="say.mp3"></audio><object data="clip.mp4"></object>`)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"say.mp3", "clip.mp4"}, files)
	})

	t.Run("includes sound directive filenames", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewMediaLister()
		files, err := l.ListMedia(`<img src="pic.jpg">[sound:fo&amp;o.mp3]`)

		require.NoError(t, err)
		assert.Equal(t, []string{"pic.jpg", "fo&o.mp3"}, files)
	})

	t.Run("deduplicates repeated references", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewMediaLister()
		files, err := l.ListMedia(`<img src="a.jpg"><img src="a.jpg">`)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg"}, files)
	})

	t.Run("returns nothing for plain text", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewMediaLister()
		files, err := l.ListMedia("no media here")

		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
