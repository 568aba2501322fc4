package transform

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	datePrefixRe = regexp.MustCompile(`^(ngày |tháng |năm )`)
	slashDateRe  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	dashDateRe   = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
	spokenDateRe = regexp.MustCompile(`(\d{1,2}) tháng (\d{1,2}),? (\d{4})`)
	yearRe       = regexp.MustCompile(`\d{4}`)

	separatorRe = regexp.MustCompile(`[.,\s]`)
	unitWordRe  = regexp.MustCompile(`(người|km²|m²|ha|hecta)`)
	digitRunRe  = regexp.MustCompile(`\d+`)

	coordinateRe = regexp.MustCompile(`(\d+\.?\d*)[°,\s]+(\d+\.?\d*)`)

	uriUnsafeRe     = regexp.MustCompile(`[^\w\x{00C0}-\x{1EF9}]`)
	underscoreRunRe = regexp.MustCompile(`_+`)
)

// ParseVietnameseDate converts common Vietnamese date spellings to ISO
// form. Day-month-year forms become YYYY-MM-DD; a bare year stays a
// year. The empty string means the value did not parse as a date.
func ParseVietnameseDate(s string) string {
	s = datePrefixRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
	if s == "" {
		return ""
	}

	for _, re := range []*regexp.Regexp{slashDateRe, dashDateRe, spokenDateRe} {
		if m := re.FindStringSubmatch(s); m != nil {
			return fmt.Sprintf("%s-%s-%s", m[3], zfill(m[2]), zfill(m[1]))
		}
	}
	if m := yearRe.FindString(s); m != "" {
		return m
	}
	return ""
}

func zfill(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// extractInteger pulls the first digit run out of a value after
// stripping Vietnamese unit words and thousand separators.
func extractInteger(s string) (int64, bool) {
	s = separatorRe.ReplaceAllString(strings.ToLower(s), "")
	s = unitWordRe.ReplaceAllString(s, "")
	run := digitRunRe.FindString(s)
	if run == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseCoordinates reduces a coordinate string to "lat,lon".
func parseCoordinates(s string) string {
	m := coordinateRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1] + "," + m[2]
}

// cleanTitleForURI canonicalizes a Wikipedia title into a URI-safe
// local name. Vietnamese diacritics survive; everything else outside
// the word class collapses to a single underscore.
func cleanTitleForURI(title string) string {
	cleaned := strings.ReplaceAll(title, " ", "_")
	cleaned = uriUnsafeRe.ReplaceAllString(cleaned, "_")
	cleaned = underscoreRunRe.ReplaceAllString(cleaned, "_")
	return strings.Trim(cleaned, "_")
}

// mintURI joins a namespace with the percent-encoded local name for a
// title.
func mintURI(namespace, title string) string {
	return namespace + url.PathEscape(cleanTitleForURI(title))
}
