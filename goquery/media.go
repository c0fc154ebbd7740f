// Package goquery lists media references in field HTML using DOM
// traversal.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardtext"
)

// Ensure MediaLister implements cardtext.MediaLister at compile time.
var _ cardtext.MediaLister = (*MediaLister)(nil)

// mediaSelectors pair a CSS selector with the attribute that carries the
// file reference.
var mediaSelectors = []struct {
	selector string
	attr     string
}{
	{"img[src]", "src"},
	{"audio[src]", "src"},
	{"source[src]", "src"},
	{"embed[src]", "src"},
	{"object[data]", "data"},
}

// MediaLister extracts referenced media filenames from field HTML. Unlike
// the pattern-based stripping operations, this walks a parsed DOM: the
// media checker needs attribute values from arbitrary markup, not opaque
// tag spans.
type MediaLister struct{}

// NewMediaLister creates a new MediaLister.
func NewMediaLister() *MediaLister {
	return &MediaLister{}
}

// ListMedia returns the filenames referenced by media elements and
// [sound:...] directives, deduplicated, grouped by element type.
func (l *MediaLister) ListMedia(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cardtext.Errorf(cardtext.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var files []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		files = append(files, name)
	}

	for _, ms := range mediaSelectors {
		doc.Find(ms.selector).Each(func(_ int, sel *goquery.Selection) {
			if val, ok := sel.Attr(ms.attr); ok {
				add(strings.TrimSpace(val))
			}
		})
	}

	for tag := range cardtext.AVTags(html) {
		if sv, ok := tag.(cardtext.SoundOrVideo); ok {
			add(sv.Filename)
		}
	}

	return files, nil
}
