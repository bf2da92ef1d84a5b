package browse

import (
	"html"
	"regexp"
	"strings"
)

var markupTagRegex = regexp.MustCompile(`<[^>]*>`)

// stripMarkup converts an HTML or HTML-encoded description to plain text for
// display. The canonical job keeps the raw text; only the view strips it.
func stripMarkup(content string) string {
	unescaped := html.UnescapeString(content)
	plain := markupTagRegex.ReplaceAllString(unescaped, "")
	return strings.Join(strings.Fields(plain), " ")
}

// wordWrap folds text at the given width, preserving words.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
