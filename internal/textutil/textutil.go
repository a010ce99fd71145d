package textutil

import (
	"strings"
	"unicode"
)

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Slug derives a localization-key fragment from literal UI text: lowercased,
// runs of non-alphanumeric characters collapsed to a single underscore,
// trimmed, and capped at maxLen bytes.
func Slug(s string, maxLen int) string {
	var b strings.Builder
	lastUnderscore := true // suppress a leading separator
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	slug := strings.Trim(b.String(), "_")
	if len(slug) > maxLen {
		slug = strings.Trim(slug[:maxLen], "_")
	}
	return slug
}

// WordCount counts whitespace-separated words in a value.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ContainsPlaceholder reports whether a value contains a format placeholder
// character (%, @), e.g. "%@ items" or "%d".
func ContainsPlaceholder(s string) bool {
	return strings.ContainsAny(s, "%@")
}

// IsFormatSpecifier reports whether the whole string is a bare format
// specifier such as "%d", "%@" or "%.1f", with nothing worth localizing.
func IsFormatSpecifier(s string) bool {
	if len(s) < 2 || s[0] != '%' {
		return false
	}
	for _, r := range s[1:] {
		if !unicode.IsDigit(r) && r != '.' && !unicode.IsLetter(r) && r != '@' {
			return false
		}
	}
	return true
}

// IsNumeric reports whether the string consists only of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
