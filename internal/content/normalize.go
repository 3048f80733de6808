package content

import "strings"

// NormalizeQuestion lowercases, collapses whitespace, and strips trailing
// punctuation so near-identical questions compare equal.
func NormalizeQuestion(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	normalized := strings.Join(fields, " ")
	return strings.TrimRight(normalized, "?.! ")
}
