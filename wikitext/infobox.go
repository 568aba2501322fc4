// Package wikitext extracts structured data from raw MediaWiki markup.
// Its single product is the flat key/value mapping of an article's
// first infobox template.
package wikitext

import (
	"strings"
)

// TemplateTypeKey is the mapping key holding the infobox template name
// with its recognized prefix removed.
const TemplateTypeKey = "template_type"

// infoboxPrefixes are the Vietnamese template-name prefixes that mark a
// template invocation as an infobox.
var infoboxPrefixes = []string{"thông tin", "infobox", "hộp thông tin"}

// ParseInfobox extracts the first infobox of the markup as a flat
// mapping. The template name, minus its prefix, is stored under
// TemplateTypeKey. Malformed or absent infoboxes yield an empty map;
// keys and values that are empty after cleaning are dropped.
func ParseInfobox(markup string) map[string]string {
	fields := make(map[string]string)

	body, ok := findInfoboxBody(markup)
	if !ok {
		return fields
	}

	segments := splitTopLevel(body)
	if len(segments) == 0 {
		return fields
	}

	templateName := strings.TrimSpace(segments[0])
	if t := templateType(templateName); t != "" {
		fields[TemplateTypeKey] = t
	}

	for _, segment := range segments[1:] {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = CleanMarkup(value)
		if key == "" || value == "" {
			continue
		}
		fields[key] = value
	}

	return fields
}

// findInfoboxBody locates the first recognized infobox invocation and
// returns its body without the enclosing braces.
func findInfoboxBody(markup string) (string, bool) {
	lower := strings.ToLower(markup)

	start := -1
	for i := 0; i+2 <= len(lower); i++ {
		if lower[i] != '{' || i+1 >= len(lower) || lower[i+1] != '{' {
			continue
		}
		rest := strings.TrimLeft(lower[i+2:], " \t\n")
		for _, prefix := range infoboxPrefixes {
			if strings.HasPrefix(rest, prefix) {
				start = i
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i+1 < len(markup); i++ {
		switch {
		case markup[i] == '{' && markup[i+1] == '{':
			depth++
			i++
		case markup[i] == '}' && markup[i+1] == '}':
			depth--
			i++
			if depth == 0 {
				return markup[start+2 : i-1], true
			}
		}
	}

	// Unterminated template.
	return "", false
}

// splitTopLevel splits a template body on pipes, ignoring pipes nested
// inside templates or links.
func splitTopLevel(body string) []string {
	var segments []string
	var braceDepth, bracketDepth int
	last := 0

	for i := 0; i < len(body); i++ {
		switch {
		case i+1 < len(body) && body[i] == '{' && body[i+1] == '{':
			braceDepth++
			i++
		case i+1 < len(body) && body[i] == '}' && body[i+1] == '}':
			braceDepth--
			i++
		case i+1 < len(body) && body[i] == '[' && body[i+1] == '[':
			bracketDepth++
			i++
		case i+1 < len(body) && body[i] == ']' && body[i+1] == ']':
			bracketDepth--
			i++
		case body[i] == '|' && braceDepth == 0 && bracketDepth == 0:
			segments = append(segments, body[last:i])
			last = i + 1
		}
	}
	segments = append(segments, body[last:])
	return segments
}

// templateType strips the recognized prefix from a template name. The
// result is the Vietnamese type phrase used for class routing, e.g.
// "Thông tin nhân vật" becomes "nhân vật".
func templateType(name string) string {
	lower := strings.ToLower(name)
	for _, prefix := range infoboxPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(name[len(prefix):])
		}
	}
	return strings.TrimSpace(name)
}
