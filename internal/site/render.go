package site

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"prepdeck/internal/markdown"
)

var (
	codeSpanPattern   = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*([^*]+)\*`)
	bulletPattern     = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
	orderedPattern    = regexp.MustCompile(`^\s*\d+[.)]\s+(.*)$`)
	underscorePattern = regexp.MustCompile(`(^|\s)_([^_]+)_`)
)

// renderMarkdown converts answer markdown into HTML. It covers the subset the
// decks actually use: headings, paragraphs, fenced code, inline code,
// bold/italic, links, and lists. Everything is escaped before markup is
// re-introduced.
func renderMarkdown(source string) template.HTML {
	doc := markdown.Parse("", []byte(source))
	var b strings.Builder
	for _, block := range doc.Blocks {
		switch block.Kind {
		case markdown.BlockHeading:
			level := block.Level
			if level < 1 {
				level = 1
			}
			if level > 6 {
				level = 6
			}
			fmt.Fprintf(&b, "<h%d id=%q>%s</h%d>\n", level, block.Slug, renderInline(block.Text), level)
		case markdown.BlockCode:
			b.WriteString(renderCode(block.Language, block.Body))
		case markdown.BlockProse:
			b.WriteString(renderProse(block.Lines))
		}
	}
	return template.HTML(b.String())
}

// renderCode emits an escaped code block with a language class.
func renderCode(language, body string) string {
	if language == "" {
		language = "plain"
	}
	return fmt.Sprintf("<pre><code class=\"lang-%s\">%s</code></pre>\n",
		html.EscapeString(language), html.EscapeString(body))
}

// renderProse turns one blank-line-delimited run of lines into paragraphs
// and lists.
func renderProse(lines []string) string {
	var b strings.Builder
	var paragraph []string
	var items []string
	ordered := false

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		b.WriteString("<p>" + renderInline(strings.Join(paragraph, " ")) + "</p>\n")
		paragraph = nil
	}
	flushList := func() {
		if len(items) == 0 {
			return
		}
		tag := "ul"
		if ordered {
			tag = "ol"
		}
		b.WriteString("<" + tag + ">\n")
		for _, item := range items {
			b.WriteString("<li>" + renderInline(item) + "</li>\n")
		}
		b.WriteString("</" + tag + ">\n")
		items = nil
	}

	for _, line := range lines {
		if match := bulletPattern.FindStringSubmatch(line); match != nil {
			flushParagraph()
			if len(items) == 0 {
				ordered = false
			}
			items = append(items, match[1])
			continue
		}
		if match := orderedPattern.FindStringSubmatch(line); match != nil {
			flushParagraph()
			if len(items) == 0 {
				ordered = true
			}
			items = append(items, match[1])
			continue
		}
		flushList()
		paragraph = append(paragraph, strings.TrimSpace(line))
	}
	flushParagraph()
	flushList()
	return b.String()
}

// renderInline escapes text and applies inline code, links, bold, and italic.
func renderInline(text string) string {
	out := html.EscapeString(text)
	out = codeSpanPattern.ReplaceAllString(out, "<code>$1</code>")
	out = linkPattern.ReplaceAllString(out, `<a href="$2">$1</a>`)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicPattern.ReplaceAllString(out, "<em>$1</em>")
	out = underscorePattern.ReplaceAllString(out, "$1<em>$2</em>")
	return out
}
