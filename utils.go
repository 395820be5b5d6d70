package rxkit

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	matchSQLComments       = regexp.MustCompile(`(?m)^--.*$[\r\n]*`)
	matchNewLinesAndSpaces = regexp.MustCompile(`[ \t\r\n]+`)
)

const previewWidth = 60

// cleanSQL removes the SQL comments and collapses the whitespace
func cleanSQL(s string) string {
	s = matchSQLComments.ReplaceAllString(s, "")
	return strings.TrimSpace(matchNewLinesAndSpaces.ReplaceAllString(s, " "))
}

// previewSQL returns a one-line label of the query, at most previewWidth bytes long
func previewSQL(s string) string {
	s = cleanSQL(s)
	if len(s) == 0 {
		return "(empty query)"
	}

	if len(s) <= previewWidth {
		return s
	}

	end := previewWidth - 3
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}

	idx := strings.LastIndex(s[:end], " ")
	if idx > previewWidth*2/3 {
		return s[:idx] + "..."
	}

	return s[:end] + "..."
}
