package export

import (
	"fmt"
	"strings"

	"prepdeck/internal/content"
)

// Options selects and annotates the question set to export.
type Options struct {
	Topics     []string
	Title      string
	ContentRev string
}

// BuildSpec assembles a versioned question set from loaded content.
func BuildSpec(lib *content.Library, opts Options) (Spec, error) {
	if lib == nil {
		return Spec{}, fmt.Errorf("export: library is nil")
	}
	decks := lib.Decks
	if len(opts.Topics) > 0 {
		decks = nil
		for _, topic := range opts.Topics {
			deck, ok := lib.Deck(strings.ToLower(strings.TrimSpace(topic)))
			if !ok {
				return Spec{}, fmt.Errorf("export: unknown topic %q (have: %s)", topic, strings.Join(lib.Topics(), ", "))
			}
			decks = append(decks, deck)
		}
	}

	spec := Spec{
		Version:    SpecVersion,
		Title:      opts.Title,
		ContentRev: opts.ContentRev,
	}
	for _, deck := range decks {
		for _, qa := range deck.QAs() {
			spec.Questions = append(spec.Questions, Question{
				ID:       qa.ID,
				Topic:    qa.Topic,
				Number:   qa.Number,
				Prompt:   qa.Question,
				Answer:   qa.Answer,
				Anchor:   qa.Anchor,
				CodeLang: codeLanguages(qa.Code),
				Source:   fmt.Sprintf("%s#%s", qa.File, qa.Anchor),
			})
		}
	}
	if len(spec.Questions) == 0 {
		return Spec{}, fmt.Errorf("export: no questions to export")
	}
	return spec, nil
}

// codeLanguages returns the distinct fence languages in first-seen order.
func codeLanguages(blocks []content.CodeBlock) []string {
	var out []string
	seen := map[string]bool{}
	for _, block := range blocks {
		lang := block.Language
		if lang == "" {
			lang = "plain"
		}
		if !seen[lang] {
			seen[lang] = true
			out = append(out, lang)
		}
	}
	return out
}
