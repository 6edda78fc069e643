package main

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanText collapses whitespace runs to single spaces and trims the result.
// When a prefix is given, its first case-insensitive occurrence is removed
// from the text before collapsing, wherever it appears.
func cleanText(text string, removePrefix ...string) string {
	if len(removePrefix) > 0 && removePrefix[0] != "" {
		prefix := removePrefix[0]
		lower := strings.ToLower(text)
		if idx := strings.Index(lower, strings.ToLower(prefix)); idx >= 0 {
			// lowering maps rune for rune, so rune offsets in the lowered
			// string line up with the original even when byte widths differ
			// (e.g. U+0130 lowers to a shorter encoding)
			runes := []rune(text)
			start := utf8.RuneCountInString(lower[:idx])
			end := start + utf8.RuneCountInString(prefix)
			text = string(runes[:start]) + string(runes[end:])
		}
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

func nodeText(node *html.Node) string {
	var buf bytes.Buffer
	collectText(node, &buf)
	return buf.String()
}

func collectText(node *html.Node, buf *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buf.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, buf)
	}
}

// extractFieldText reads one labeled field from the document. The portal
// mixes "label: value" inline text with "label: <strong>value</strong>"
// markup, so extraction degrades through three layers instead of failing:
// the bold element's immediate sibling, any bold element's next sibling
// element, and finally the full text of the match with the label prefix
// stripped. An unmatched selector yields the empty string.
func extractFieldText(doc *goquery.Document, selector, stripPrefix string) string {
	scope := doc.Find(selector)
	if scope.Length() == 0 {
		return ""
	}

	strong := scope.Find("strong")
	if strong.Length() > 0 {
		if sibling := strong.Get(0).NextSibling; sibling != nil {
			if text := cleanText(nodeText(sibling)); text != "" {
				return text
			}
		}
		if text := cleanText(strong.Next().Text()); text != "" {
			return text
		}
	}

	return cleanText(scope.Text(), stripPrefix)
}
