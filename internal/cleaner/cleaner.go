// Package cleaner normalizes pasted job posting HTML into plain text and
// strips markdown code fences from AI responses.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	htmlHintRe   = regexp.MustCompile(`(?i)<\s*(html|body|div|p|ul|li|br|span|h[1-6])\b`)
)

// LooksLikeHTML reports whether the text appears to be markup rather than
// plain text.
func LooksLikeHTML(text string) bool {
	return htmlHintRe.MatchString(text)
}

// HTML extracts readable text from a job posting page, dropping navigation
// and boilerplate elements.
func HTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(tagRe.ReplaceAllString(html, " "))
	}

	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}

	if body := strings.TrimSpace(doc.Find("body").Text()); body != "" {
		return collapse(body)
	}
	return collapse(doc.Text())
}

// StripFences removes a surrounding markdown code fence from an AI response,
// returning the inner text untouched when no fence is present.
func StripFences(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := strings.Index(response, "```")
	rest := response[start+3:]
	// Drop an optional language tag on the opening fence line.
	if nl := strings.Index(rest, "\n"); nl >= 0 && !strings.Contains(rest[:nl], " ") {
		rest = rest[nl+1:]
	}
	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func collapse(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
