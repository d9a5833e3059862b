package prepare

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions selects which normalization steps apply.
type NormalizeOptions struct {
	Lower              bool
	CollapseWhitespace bool
	StripURLs          bool
}

var (
	urlPattern        = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize applies the selected steps to text. Unicode NFC and HTML
// markup removal always run, since downstream token statistics must not
// see markup or decomposed code points.
func Normalize(text string, opts NormalizeOptions) string {
	text = norm.NFC.String(text)
	if strings.ContainsRune(text, '<') {
		text = stripHTML(text)
	}
	if opts.StripURLs {
		text = urlPattern.ReplaceAllString(text, "")
	}
	if opts.Lower {
		text = strings.ToLower(text)
	}
	if opts.CollapseWhitespace {
		text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	}
	return text
}

// stripHTML drops markup and keeps text content.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return buf.String()
}
