// Package similarity scores how alike two entity names are. Inputs are
// normalized to a diacritic-free lowercase form, compared under several
// string metrics, and the metric scores are folded into a single
// confidence value.
package similarity

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks    = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, folds Vietnamese diacritics to base Latin
// letters, removes punctuation, and collapses whitespace. The result is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = StripDiacritics(s)
	s = punctuationRe.ReplaceAllString(s, "")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripDiacritics removes combining marks. The đ/Đ pair is not a
// combining form, so it is folded explicitly.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = strings.ReplaceAll(out, "đ", "d")
	out = strings.ReplaceAll(out, "Đ", "D")
	return out
}

// Tokens splits a normalized string into words.
func Tokens(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
