package util

import "strings"

// NormalizeKey trims and lowercases s and spells word separators as
// dashes, so "API_KEY", "api key" and "api-key" look up the same entry.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}), "-")
}
