package core

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NormalizedText holds the two plain-text renderings of a page.
// Text is everything outside script/style blocks; ContentText further
// drops head, navigation, header, and footer boilerplate so per-word
// statistics reflect the page's actual content.
type NormalizedText struct {
	Text        string
	ContentText string
}

// stripPolicy removes every tag and the contents of script, style,
// noscript, and title elements. Safe for concurrent use once built.
var stripPolicy = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	p.SkipElementsContent("script", "style", "noscript", "title")
	return p
}()

// skippedContentAtoms are elements whose subtrees are excluded from the
// content-text view.
var skippedContentAtoms = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Nav:      true,
	atom.Header:   true,
	atom.Footer:   true,
}

// Normalize produces the plain-text views of raw HTML. It never fails:
// malformed markup degrades to whatever text survives tag-stripping.
func Normalize(htmlContent []byte) NormalizedText {
	text := collapseWhitespace(stdhtml.UnescapeString(stripPolicy.Sanitize(string(htmlContent))))

	contentText := extractContentText(htmlContent)
	if contentText == "" {
		contentText = text
	}

	return NormalizedText{
		Text:        text,
		ContentText: contentText,
	}
}

// extractContentText walks the parsed document collecting text nodes,
// skipping boilerplate subtrees.
func extractContentText(htmlContent []byte) string {
	doc, err := html.Parse(bytes.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedContentAtoms[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseWhitespace(sb.String())
}

// collapseWhitespace folds all whitespace runs into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
