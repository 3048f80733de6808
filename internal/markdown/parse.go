package markdown

import (
	"regexp"
	"strings"
)

var inlineLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)

// Parse scans markdown data into a flat block list. The scanner covers the
// subset the content corpus uses: ATX headings, backtick and tilde fences,
// and prose runs. It never fails; malformed input degrades to prose and
// unterminated fences are marked Unclosed.
func Parse(name string, data []byte) Document {
	lines := splitLines(data)
	slugger := NewSlugger()
	doc := Document{Name: name}

	var prose *Block
	flushProse := func() {
		if prose == nil {
			return
		}
		doc.Blocks = append(doc.Blocks, *prose)
		prose = nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		lineNo := i + 1

		if marker, info, ok := fenceOpen(line); ok {
			flushProse()
			block := Block{
				Kind:     BlockCode,
				Line:     lineNo,
				Info:     info,
				Language: fenceLanguage(info),
			}
			var body []string
			closed := false
			for i++; i < len(lines); i++ {
				if fenceClose(lines[i], marker) {
					closed = true
					break
				}
				body = append(body, lines[i])
			}
			block.Body = strings.Join(body, "\n")
			block.Unclosed = !closed
			doc.Blocks = append(doc.Blocks, block)
			continue
		}

		if level, text, ok := heading(line); ok {
			flushProse()
			doc.Blocks = append(doc.Blocks, Block{
				Kind:  BlockHeading,
				Line:  lineNo,
				Level: level,
				Text:  text,
				Slug:  slugger.Next(stripInlineMarkup(text)),
			})
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushProse()
			continue
		}

		if prose == nil {
			prose = &Block{Kind: BlockProse, Line: lineNo}
		}
		prose.Lines = append(prose.Lines, line)
		for _, match := range inlineLinkPattern.FindAllStringSubmatch(line, -1) {
			prose.Links = append(prose.Links, Link{Text: match[1], Target: match[2], Line: lineNo})
		}
	}
	flushProse()
	return doc
}

// splitLines normalizes CRLF and splits into lines without terminators.
func splitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// heading matches an ATX heading with up to three leading spaces.
func heading(line string) (int, string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := trimmed[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	text := strings.TrimSpace(rest)
	return level, trimClosingSequence(text), true
}

// trimClosingSequence removes an ATX closing hash run, which must be the
// whole text or preceded by whitespace; "What is C#" keeps its hash.
func trimClosingSequence(text string) string {
	trimmed := strings.TrimRight(text, "#")
	if trimmed == text {
		return text
	}
	if trimmed == "" {
		return ""
	}
	if rest := strings.TrimRight(trimmed, " \t"); rest != trimmed {
		return rest
	}
	return text
}

// fenceOpen reports whether a line opens a fence and returns the marker
// (used to match the closing line) and the info string.
func fenceOpen(line string) (string, string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return "", "", false
	}
	for _, ch := range []byte{'`', '~'} {
		count := 0
		for count < len(trimmed) && trimmed[count] == ch {
			count++
		}
		if count >= 3 {
			info := strings.TrimSpace(trimmed[count:])
			// Backtick fences may not carry backticks in the info string.
			if ch == '`' && strings.Contains(info, "`") {
				return "", "", false
			}
			return trimmed[:count], info, true
		}
	}
	return "", "", false
}

// fenceClose matches a closing fence of at least the opening marker length.
func fenceClose(line, marker string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, marker) {
		return false
	}
	return strings.Trim(trimmed, string(marker[0])) == ""
}

// fenceLanguage extracts the lowercase language token from an info string.
func fenceLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// stripInlineMarkup removes code spans, emphasis markers, and link syntax
// so slugs are computed from the rendered heading text.
func stripInlineMarkup(text string) string {
	text = inlineLinkPattern.ReplaceAllString(text, "$1")
	replacer := strings.NewReplacer("`", "", "**", "", "__", "", "*", "", "~~", "")
	return replacer.Replace(text)
}
