package lib

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace folds runs of whitespace into single spaces and trims
// the ends. Extracted article text keeps newlines and tabs from the markup
// otherwise.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// LimitStringLength cuts s to at most max runes.
// The second return reports whether anything was cut.
func LimitStringLength(s string, max int) (string, bool) {
	asRunes := []rune(s)

	if len(asRunes) > max {
		return string(asRunes[:max]), true
	}

	return s, false
}

// StripHTML returns the visible text of an HTML fragment. Feed entries
// routinely ship their body as markup. Script and style contents are
// skipped; on a parse failure the input is returned unchanged.
func StripHTML(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return CollapseWhitespace(b.String())
}
