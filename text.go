package cardtext

import (
	"html"
	"regexp"
	"strings"
)

// The matchers are compiled once at package init and are immutable
// afterwards, so they are safe to share across goroutines. Go's regexp
// engine runs in linear time, which keeps pathological field content from
// stalling a render.
var (
	// htmlRe matches comments, style/script blocks (with their contents),
	// and generic tags.
	htmlRe = regexp.MustCompile(`(?si)(<!--.*?-->)|(<style.*?>.*?</style>)|(<script.*?>.*?</script>)|(<.*?>)`)

	// imgRe matches <img> tags; group 1 is the src filename.
	imgRe = regexp.MustCompile(`(?i)<img[^>]+src=["']?([^"'>]+)["']?[^>]*>`)

	// entityRe matches spans shaped like a character reference: named,
	// decimal, or hex. The length bound covers the longest named entity.
	entityRe = regexp.MustCompile(`&#?[0-9a-zA-Z]{1,32};`)
)

// malformedEntity replaces a span that looked like a character reference
// but failed to decode.
const malformedEntity = "�"

// StripHTML removes comments, style and script blocks (including their
// contents), and generic tags. Text without markup is returned as-is
// without allocating. Stripping is idempotent.
func StripHTML(text string) string {
	if !htmlRe.MatchString(text) {
		return text
	}
	return htmlRe.ReplaceAllString(text, "")
}

// DecodeEntities decodes HTML/XML character references, named and numeric.
// Text without an ampersand is returned as-is. A span shaped like a
// reference that fails to decode degrades to U+FFFD in place; the
// surrounding text is still processed normally, so decoding never fails.
func DecodeEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}
	if !entityRe.MatchString(text) {
		return text
	}
	return entityRe.ReplaceAllStringFunc(text, func(ent string) string {
		if decoded := html.UnescapeString(ent); decoded != ent {
			return decoded
		}
		return malformedEntity
	})
}

// StripHTMLForSpeech prepares field text for speech synthesis: each tag is
// replaced with a single space so adjacent inline elements keep a word
// boundary, then entities are decoded.
func StripHTMLForSpeech(text string) string {
	if !htmlRe.MatchString(text) {
		return DecodeEntities(text)
	}
	return DecodeEntities(htmlRe.ReplaceAllString(text, " "))
}

// StripHTMLPreservingImageFilenames rewrites every <img> tag to its src
// filename surrounded by single spaces, then strips all remaining markup.
// When neither rewrite changes anything the original text is returned
// unchanged.
func StripHTMLPreservingImageFilenames(text string) string {
	if !imgRe.MatchString(text) && !htmlRe.MatchString(text) {
		return text
	}
	withNames := imgRe.ReplaceAllString(text, " ${1} ")
	return StripHTML(withNames)
}
