// Package htmltomarkdown converts field HTML to Markdown for export and
// copy-as-plain-text paths.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/cardtext"
)

// Ensure Converter implements cardtext.Converter at compile time.
var _ cardtext.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert field HTML to Markdown.
// Audio and TTS directives are removed first; they have no Markdown
// representation and would otherwise leak into the export as literal
// bracket text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms field HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", cardtext.Errorf(cardtext.EINVALID, "empty field input")
	}

	result, err := c.conv.ConvertString(cardtext.StripAVTags(html))
	if err != nil {
		return "", err
	}

	return result, nil
}
