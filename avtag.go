package cardtext

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// avRe matches [sound:...] directives (group 1: filename) and
// [anki:tts][args]text[/anki:tts] directives (group 2: arguments,
// group 3: field text). Matches span newlines and are non-greedy so
// adjacent directives do not merge.
var avRe = regexp.MustCompile(`(?s)\[sound:(.*?)\]|\[anki:tts\]\[(.*?)\](.*?)\[/anki:tts\]`)

// AVTag is one parsed audio/speech directive found in field text.
// It is either a SoundOrVideo or a TextToSpeech.
type AVTag interface {
	avTag()
}

// SoundOrVideo requests playback of a media file.
type SoundOrVideo struct {
	// Filename is the entity-decoded file reference.
	Filename string
}

func (SoundOrVideo) avTag() {}

// TextToSpeech requests synthesized speech of enclosed field text. This
// package only extracts the arguments for a TTS call; it never performs
// one.
type TextToSpeech struct {
	// FieldText is the enclosed text with HTML stripped and entities
	// decoded.
	FieldText string

	// Lang is the first whitespace-separated argument token, empty when
	// no arguments were given.
	Lang string

	// Voices holds the comma-separated values of a voices= argument.
	// When the argument repeats, the last occurrence wins.
	Voices []string

	// OtherArgs holds the remaining argument tokens in original order.
	OtherArgs []string
}

func (TextToSpeech) avTag() {}

// StripAVTags removes every sound and TTS directive from the text.
// A malformed directive simply fails to match and is left untouched.
func StripAVTags(text string) string {
	if !avRe.MatchString(text) {
		return text
	}
	return avRe.ReplaceAllString(text, "")
}

// FlagAVTags replaces the Nth directive, counting from zero left to
// right, with an [anki:play]N[/anki:play] placeholder so a consumer can
// correlate playback placeholders with the tags AVTags yields for the
// same text. The counter resets on each call.
func FlagAVTags(text string) string {
	if !avRe.MatchString(text) {
		return text
	}
	idx := 0
	return avRe.ReplaceAllStringFunc(text, func(string) string {
		s := fmt.Sprintf("[anki:play]%d[/anki:play]", idx)
		idx++
		return s
	})
}

// AVTags yields each directive in the text in order of appearance. The
// sequence is lazy; ranging over it again rescans the text and yields
// the same tags.
func AVTags(text string) iter.Seq[AVTag] {
	return func(yield func(AVTag) bool) {
		pos := 0
		for pos <= len(text) {
			m := avRe.FindStringSubmatchIndex(text[pos:])
			if m == nil {
				return
			}
			var tag AVTag
			if m[2] >= 0 {
				tag = SoundOrVideo{Filename: DecodeEntities(text[pos+m[2] : pos+m[3]])}
			} else {
				args := text[pos+m[4] : pos+m[5]]
				fieldText := text[pos+m[6] : pos+m[7]]
				tag = parseTTSTag(fieldText, args)
			}
			if !yield(tag) {
				return
			}
			pos += m[1]
		}
	}
}

// parseTTSTag splits a TTS argument string on single spaces: the first
// token is the language, a voices= token is split on = and then , and
// every other token is kept in order.
func parseTTSTag(fieldText, args string) TextToSpeech {
	tokens := strings.Split(args, " ")
	tag := TextToSpeech{
		FieldText: StripHTMLForSpeech(fieldText),
		Lang:      tokens[0],
	}
	for _, tok := range tokens[1:] {
		if strings.HasPrefix(tok, "voices=") {
			tag.Voices = strings.Split(strings.Split(tok, "=")[1], ",")
		} else {
			tag.OtherArgs = append(tag.OtherArgs, tok)
		}
	}
	return tag
}
