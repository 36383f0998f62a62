package converter

import (
	"regexp"
	"strings"
)

// amountRegex checks for an unsigned decimal: digits with at most one point.
// The empty string is valid, it represents "no value yet".
var amountRegex = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// IsValidAmount reports whether input is acceptable as a field amount.
func IsValidAmount(input string) bool {
	return amountRegex.MatchString(input)
}

// StripGroups removes grouping separators, returning the canonical raw
// numeric string.
func StripGroups(display string) string {
	return strings.ReplaceAll(display, ",", "")
}

// FormatGroups inserts a grouping separator every three digits left of the
// decimal point. The fractional part is left untouched. Empty or invalid
// input is returned unchanged.
func FormatGroups(raw string) string {
	s := StripGroups(raw)
	if s == "" || !IsValidAmount(s) {
		return raw
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
