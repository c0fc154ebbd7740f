// Package cardtext processes flashcard field text: it strips presentational
// markup, decodes HTML entities, and parses embedded media and speech
// directives out of free-form card content.
//
// The core operations are pure functions over an input string. Markup is
// treated as opaque tag spans matched by pattern, never as a DOM tree, and
// every operation is total: user-authored card text is untrusted and
// frequently malformed, so a markup mistake must never fail a card display.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., bluemonday/, goquery/).
package cardtext
