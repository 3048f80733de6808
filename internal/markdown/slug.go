package markdown

import (
	"fmt"
	"strings"
	"unicode"
)

// Slug converts heading text to a GitHub-style anchor slug.
func Slug(text string) string {
	var builder strings.Builder
	for _, r := range strings.TrimSpace(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-':
			builder.WriteRune('-')
		case r == '_':
			builder.WriteRune('_')
		}
	}
	return builder.String()
}

// Slugger assigns unique anchor slugs the way GitHub does: repeated
// headings get -1, -2, ... suffixes in document order.
type Slugger struct {
	seen map[string]int
}

// NewSlugger returns a Slugger with empty history.
func NewSlugger() *Slugger {
	return &Slugger{seen: map[string]int{}}
}

// Next returns the anchor slug for the given heading text.
func (s *Slugger) Next(text string) string {
	base := Slug(text)
	count, exists := s.seen[base]
	s.seen[base] = count + 1
	if !exists {
		return base
	}
	return fmt.Sprintf("%s-%d", base, count)
}
