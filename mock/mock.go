// Package mock provides hand-rolled mocks for cardtext interfaces.
package mock

import "github.com/fwojciec/cardtext"

var _ cardtext.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of cardtext.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

var _ cardtext.MediaLister = (*MediaLister)(nil)

// MediaLister is a mock implementation of cardtext.MediaLister.
type MediaLister struct {
	ListMediaFn func(html string) ([]string, error)
}

func (l *MediaLister) ListMedia(html string) ([]string, error) {
	return l.ListMediaFn(html)
}

var _ cardtext.Converter = (*Converter)(nil)

// Converter is a mock implementation of cardtext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
