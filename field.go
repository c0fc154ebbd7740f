package cardtext

// Sanitizer normalizes untrusted HTML before it is stored in a note
// field. Editor paste paths run through this; the stripping operations in
// this package assume nothing about their input and do not require it.
type Sanitizer interface {
	// Sanitize strips disallowed markup while preserving readable text.
	Sanitize(html string) string
}

// MediaLister reports every media file a field references, so the media
// checker can find unused or missing files.
type MediaLister interface {
	// ListMedia returns the referenced filenames, deduplicated.
	// Returns EINVALID if the input cannot be parsed.
	ListMedia(html string) ([]string, error)
}

// Converter converts field HTML to Markdown, for export and
// copy-as-plain-text paths.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
