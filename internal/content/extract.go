package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"prepdeck/internal/markdown"
)

var (
	numberedQuestionPattern = regexp.MustCompile(`^(\d+)[.)]\s+(.*)$`)
	backToTopPattern        = regexp.MustCompile(`(?i)\[[^\]]*back to top[^\]]*\]`)
)

// tocHeadingText identifies a document's table-of-contents section.
const tocHeadingText = "table of contents"

// Extract builds a content document from a parsed markdown file. questionLevel
// is the heading level that starts a new Q&A pair.
func Extract(path, topic string, doc markdown.Document, questionLevel int) Document {
	out := Document{
		Path:     path,
		Markdown: doc,
		Title:    documentTitle(doc, path),
		TOC:      extractTOC(doc),
	}

	blocks := doc.Blocks
	for i := 0; i < len(blocks); i++ {
		block := blocks[i]
		if block.Kind != markdown.BlockHeading || block.Level != questionLevel {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(block.Text), tocHeadingText) {
			continue
		}
		end := i + 1
		for end < len(blocks) {
			next := blocks[end]
			if next.Kind == markdown.BlockHeading && next.Level <= questionLevel {
				break
			}
			end++
		}
		out.QAs = append(out.QAs, buildQA(topic, path, block, blocks[i+1:end]))
		i = end - 1
	}
	return out
}

// buildQA assembles one Q&A pair from its heading and answer blocks.
func buildQA(topic, path string, heading markdown.Block, body []markdown.Block) QA {
	number, question := splitQuestionNumber(heading.Text)
	qa := QA{
		Topic:    topic,
		Number:   number,
		Question: question,
		Anchor:   heading.Slug,
		File:     path,
		Line:     heading.Line,
	}
	if number > 0 {
		qa.ID = fmt.Sprintf("%s-%d", topic, number)
	} else {
		qa.ID = topic + "-" + truncateSlug(heading.Slug, 40)
	}

	var answer []string
	for _, block := range body {
		switch block.Kind {
		case markdown.BlockCode:
			qa.Code = append(qa.Code, CodeBlock{
				Language: block.Language,
				Body:     block.Body,
				Line:     block.Line,
				Unclosed: block.Unclosed,
			})
			answer = append(answer, refence(block))
		case markdown.BlockHeading:
			answer = append(answer, strings.Repeat("#", block.Level)+" "+block.Text)
		case markdown.BlockProse:
			lines := dropBackToTop(block.Lines)
			if len(lines) > 0 {
				answer = append(answer, strings.Join(lines, "\n"))
			}
		}
	}
	qa.Answer = strings.TrimSpace(strings.Join(answer, "\n\n"))
	return qa
}

// splitQuestionNumber splits "12. What is X?" into its number and text.
func splitQuestionNumber(text string) (int, string) {
	text = strings.TrimSpace(text)
	match := numberedQuestionPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, text
	}
	number, err := strconv.Atoi(match[1])
	if err != nil || number <= 0 {
		return 0, text
	}
	return number, strings.TrimSpace(match[2])
}

// extractTOC collects anchor links from the table-of-contents section.
func extractTOC(doc markdown.Document) []TOCEntry {
	blocks := doc.Blocks
	start := -1
	level := 0
	for i, block := range blocks {
		if block.Kind == markdown.BlockHeading && strings.EqualFold(strings.TrimSpace(block.Text), tocHeadingText) {
			start = i + 1
			level = block.Level
			break
		}
	}
	if start == -1 {
		return nil
	}
	var entries []TOCEntry
	for _, block := range blocks[start:] {
		if block.Kind == markdown.BlockHeading && block.Level <= level {
			break
		}
		for _, link := range block.Links {
			if !strings.HasPrefix(link.Target, "#") {
				continue
			}
			entries = append(entries, TOCEntry{
				Text:   link.Text,
				Anchor: strings.TrimPrefix(link.Target, "#"),
				Line:   link.Line,
			})
		}
	}
	return entries
}

// documentTitle returns the first H1 text, falling back to the file name.
func documentTitle(doc markdown.Document, path string) string {
	for _, block := range doc.Blocks {
		if block.Kind == markdown.BlockHeading && block.Level == 1 {
			return block.Text
		}
	}
	return strings.TrimSuffix(baseName(path), ".md")
}

// dropBackToTop removes navigation-only "back to top" lines from an answer.
func dropBackToTop(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if backToTopPattern.MatchString(line) && len(strings.Fields(line)) <= 6 {
			continue
		}
		out = append(out, line)
	}
	return out
}

// refence re-renders a code block as fenced markdown for answer text.
func refence(block markdown.Block) string {
	marker := "```"
	if strings.Contains(block.Body, "```") {
		marker = "````"
	}
	return marker + block.Info + "\n" + block.Body + "\n" + marker
}

func truncateSlug(slug string, limit int) string {
	if len(slug) <= limit {
		return slug
	}
	truncated := slug[:limit]
	if idx := strings.LastIndex(truncated, "-"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated
}

func baseName(path string) string {
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
