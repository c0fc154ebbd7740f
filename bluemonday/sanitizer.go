// Package bluemonday sanitizes untrusted field HTML using bluemonday's
// strict policy.
package bluemonday

import (
	"regexp"
	"strings"

	"github.com/fwojciec/cardtext"
	"github.com/microcosm-cc/bluemonday"
)

// spaceRe collapses the runs of spaces left behind by stripped tags.
var spaceRe = regexp.MustCompile(` {2,}`)

// Ensure Sanitizer implements cardtext.Sanitizer at compile time.
var _ cardtext.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips all HTML tags and attributes from field content.
// A bluemonday policy is read-only after construction, so one Sanitizer
// may be shared across goroutines.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with a strict policy. Stripped tags
// leave a space behind so adjacent words do not run together.
func NewSanitizer() *Sanitizer {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return &Sanitizer{policy: p}
}

// Sanitize strips disallowed markup while preserving readable text.
// Non-breaking spaces are normalized and space runs collapsed so the
// stored field stays tidy.
func (s *Sanitizer) Sanitize(html string) string {
	out := s.policy.Sanitize(html)
	out = strings.ReplaceAll(out, " ", " ")
	out = spaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
