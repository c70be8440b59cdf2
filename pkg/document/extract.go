// Package document prepares local files for ingestion into CogmemAi.
//
// The service's ingest endpoint accepts plain text. This package extracts
// text from HTML documents and splits oversized inputs into token-budgeted
// chunks so each request stays within the service's limits.
package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// blockElements get a newline after their content so extracted text keeps
// paragraph structure.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "br": true, "blockquote": true, "pre": true,
}

// skippedElements contribute no useful text and are dropped entirely.
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
	"svg": true, "head": true, "nav": true,
}

// ExtractText returns the ingestible plain text of a file's content.
// HTML files (.html, .htm) are parsed and reduced to their visible text;
// everything else is treated as plain text and passed through.
func ExtractText(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return htmlToText(string(content))
	default:
		return string(content), nil
	}
}

// htmlToText parses HTML and collects visible text, dropping scripts,
// styles, and other noise while preserving paragraph breaks.
func htmlToText(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("document: failed to parse HTML: %w", err)
	}

	var builder strings.Builder
	collectText(doc, &builder)

	return normalizeWhitespace(builder.String()), nil
}

func collectText(n *html.Node, builder *strings.Builder) {
	if n.Type == html.CommentNode {
		return
	}
	if n.Type == html.ElementNode && skippedElements[strings.ToLower(n.Data)] {
		return
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			builder.WriteString(text)
			builder.WriteString(" ")
		}
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, builder)
	}

	if n.Type == html.ElementNode && blockElements[strings.ToLower(n.Data)] {
		builder.WriteString("\n")
	}
}

// normalizeWhitespace trims trailing spaces per line and collapses runs of
// blank lines into single paragraph breaks.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
