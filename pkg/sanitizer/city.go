package sanitizer

import (
	"regexp"
	"strings"
)

var (
	reKeepLettersOnly = regexp.MustCompile(`[^\p{L}]+`)
	reMultiUnderscore = regexp.MustCompile(`_+`)
)

// NormalizeCity lowercases and strips everything but letters, so search
// keys compare stably ("New Delhi" -> "newdelhi").
func NormalizeCity(city string) string {
	s := strings.ToLower(strings.TrimSpace(city))
	s = reKeepLettersOnly.ReplaceAllString(s, "_")
	s = reMultiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return strings.ReplaceAll(s, "_", "")
}
