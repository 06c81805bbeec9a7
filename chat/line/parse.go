package line

import (
	"regexp"
	"strings"
)

// Markup tags, usually colors around the sender name. Unclosed tags are left
// in place.
var reMarkup = regexp.MustCompile(`<[^>]*>`)

// Liberal URL matcher: scheme-prefixed URIs, www hosts and bare domains
// followed by a path, with up to two levels of balanced parentheses.
var reLink = regexp.MustCompile(
	`(?i)\b((?:[a-z][\w-]+:(?:/{1,3}|[a-z0-9%])|www\d{0,3}[.]|[a-z0-9.\-]+[.][a-z]{2,4}/)` +
		`(?:[^\s()<>]+|\(([^\s()<>]+|(\([^\s()<>]+\)))*\))+` +
		`(?:\(([^\s()<>]+|(\([^\s()<>]+\)))*\)|[^\s` + "`" + `!()\[\]{};:'".,<>?«»“”‘’]))`)

const (
	delimiter = ':'
	escape    = '\\'
)

// ParseFunc turns raw line text into an Annotation.
type ParseFunc func(text string) *Annotation

// Parse extracts the sender and every link from a raw chat line.
func Parse(text string) *Annotation {
	return &Annotation{
		sender: ParseSender(text),
		links:  ParseLinks(text),
	}
}

// ParseSender returns the text before the first unescaped ':' with markup
// tags removed, or "" when there is no delimiter or nothing is left.
func ParseSender(text string) string {
	run, ok := leadingRun(text)
	if !ok {
		return ""
	}
	return strings.TrimSpace(reMarkup.ReplaceAllString(run, ""))
}

// ParseLinks returns all non-overlapping links in text, left to right.
func ParseLinks(text string) []string {
	return reLink.FindAllString(text, -1)
}

// leadingRun scans raw text for the first delimiter not preceded by an
// escape. An escaped delimiter is kept in the run without its escape.
func leadingRun(text string) (string, bool) {
	var b strings.Builder
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
			if c != delimiter {
				b.WriteByte(escape)
			}
			b.WriteByte(c)
		case c == escape:
			escaped = true
		case c == delimiter:
			return b.String(), true
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}
