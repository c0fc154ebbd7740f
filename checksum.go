package cardtext

import "github.com/cespare/xxhash/v2"

// FieldChecksum computes a checksum of the field's visible content using
// xxhash. The text is normalized with StripHTMLPreservingImageFilenames
// first, so fields that differ only in markup collide intentionally —
// duplicate detection compares what the user sees, not the raw HTML.
func FieldChecksum(text string) uint64 {
	return xxhash.Sum64String(StripHTMLPreservingImageFilenames(text))
}
