package match

import (
	"regexp"
	"strings"
)

// Administrative-unit prefix commonly prepended to Vietnamese locality names.
// "tp" matches with or without the trailing dot; following whitespace is
// swallowed so "TP. Hồ Chí Minh" and "tp hcm" both strip cleanly.
var adminPrefix = regexp.MustCompile(`^(?i)(thành phố|tỉnh|tp\.?)\s*`)

// Normalize lowercases and trims a locality name for comparison. It never
// mutates the input; matching works on normalized copies only.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// StripPrefix removes one leading administrative prefix from an already
// normalized name. Idempotent: stripping a stripped name is a no-op.
func StripPrefix(s string) string {
	return strings.TrimSpace(adminPrefix.ReplaceAllString(s, ""))
}
