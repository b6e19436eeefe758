// Package extract pulls usable planning text out of user uploads: pasted or
// fetched HTML pages, plain-text documents and meal photos or screenshots.
package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are stripped from HTML before text extraction. Navigation
// and boilerplate would otherwise drown the actual content.
var noiseSelectors = []string{"script", "style", "nav", "footer", "header", "iframe", "noscript", "form"}

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// DocumentText extracts readable text from an uploaded document. HTML is
// parsed and de-boilerplated; anything else passes through as-is.
func DocumentText(contentType string, data []byte) (string, error) {
	if isHTML(contentType, data) {
		return htmlText(data)
	}
	return strings.TrimSpace(string(data)), nil
}

func isHTML(contentType string, data []byte) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	head := bytes.ToLower(bytes.TrimSpace(data))
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	text := sb.String()
	if text == "" {
		text = doc.Text()
	}

	// Collapse the whitespace soup HTML text extraction leaves behind.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
