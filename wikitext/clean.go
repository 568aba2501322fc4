package wikitext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	pipedLinkRe    = regexp.MustCompile(`\[\[[^\]|]*\|([^\]]*)\]\]`)
	plainLinkRe    = regexp.MustCompile(`\[\[([^\]]*)\]\]`)
	externalLinkRe = regexp.MustCompile(`\[https?://\S*\s?([^\]]*)\]`)
	templateRe     = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	boldItalicRe   = regexp.MustCompile(`'{2,}`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	refRe          = regexp.MustCompile(`<ref[^>]*>.*?</ref>|<ref[^>]*/>`)
)

// CleanMarkup reduces a wiki-markup fragment to plain text: link
// targets are replaced by their display text, nested templates and
// references are removed, HTML tags are stripped, and whitespace is
// collapsed.
func CleanMarkup(s string) string {
	s = refRe.ReplaceAllString(s, "")
	s = pipedLinkRe.ReplaceAllString(s, "$1")
	s = plainLinkRe.ReplaceAllString(s, "$1")
	s = externalLinkRe.ReplaceAllString(s, "$1")

	// Templates can nest; strip innermost-first until stable.
	for {
		cleaned := templateRe.ReplaceAllString(s, "")
		if cleaned == s {
			break
		}
		s = cleaned
	}

	s = stripHTML(s)
	s = boldItalicRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// stripHTML drops tags and keeps text content.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(tokenizer.Text())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			// <br> acts as a separator, everything else just vanishes.
			if string(name) == "br" {
				sb.WriteByte(' ')
			}
		case html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "br" {
				sb.WriteByte(' ')
			}
		}
	}
}
