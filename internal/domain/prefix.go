package domain

import (
	"regexp"
	"strings"
)

// A ToK prefix is two or more "alphanumeric char + space" pairs at the very
// start of a filename, e.g. "A B report.pdf" carries the code "AB".
var prefixRegex = regexp.MustCompile(`^([a-zA-Z0-9] ){2,}`)

// ParsePrefix extracts the ToK code embedded at the start of a filename.
// The returned code is the persisted form with spaces removed; base is the
// rest of the filename with leading whitespace trimmed. ok is false when the
// filename carries fewer than two qualifying pairs ("bare" file).
func ParsePrefix(filename string) (code, base string, ok bool) {
	match := prefixRegex.FindString(filename)
	if match == "" {
		return "", filename, false
	}
	code = strings.ReplaceAll(strings.TrimSpace(match), " ", "")
	base = strings.TrimSpace(filename[len(match):])
	return code, base, true
}

// FormatPrefix renders a code in filename form: one space after every
// character, trailing space included, so that FormatPrefix(code)+base is a
// complete filename whose prefix parses back to code.
func FormatPrefix(code string) string {
	var sb strings.Builder
	for _, r := range code {
		sb.WriteRune(r)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// IsPDF reports whether a filename has the .pdf extension, case-insensitively.
func IsPDF(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
