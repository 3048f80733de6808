package lint

import (
	"fmt"
	"strings"
)

// CheckCode applies a well-formedness check to a fence body according to its
// stated language: delimiter balance and string/comment termination. It is a
// content-lint heuristic, deliberately weaker than a real parser.
func CheckCode(language, body string) error {
	switch language {
	case "js", "javascript", "jsx", "ts", "typescript", "tsx", "json":
		return checkBrackets(body, true)
	case "css", "scss", "less":
		return checkBrackets(body, false)
	case "html":
		return checkHTML(body)
	default:
		return nil
	}
}

// checkBrackets verifies (), [], {} nesting outside strings and comments.
// templates enables backtick template literals and regex literals.
func checkBrackets(body string, templates bool) error {
	var stack []byte
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}

	i := 0
	line := 1
	// last is the previous significant byte; zero at start of a line. It
	// decides whether a slash can open a regex literal or a line comment.
	var last byte
	for i < len(body) {
		ch := body[i]
		switch ch {
		case '\n':
			line++
			last = 0
			i++
		case ' ', '\t':
			i++
		case '\'', '"':
			end, newlines, err := scanString(body, i, ch)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			line += newlines
			last = ch
			i = end
		case '`':
			if !templates {
				last = ch
				i++
				continue
			}
			end, newlines, err := scanTemplate(body, i)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			line += newlines
			last = ch
			i = end
		case '/':
			if i+1 < len(body) && body[i+1] == '/' && lineCommentPosition(last, templates) {
				for i < len(body) && body[i] != '\n' {
					i++
				}
				continue
			}
			if i+1 < len(body) && body[i+1] == '*' {
				end := strings.Index(body[i+2:], "*/")
				if end == -1 {
					return fmt.Errorf("line %d: unterminated block comment", line)
				}
				line += strings.Count(body[i:i+2+end+2], "\n")
				i += 2 + end + 2
				continue
			}
			if templates && regexPosition(last) {
				if end, ok := scanRegex(body, i); ok {
					last = '/'
					i = end
					continue
				}
			}
			last = ch
			i++
		case '(', '[', '{':
			stack = append(stack, ch)
			last = ch
			i++
		case ')', ']', '}':
			if len(stack) == 0 {
				return fmt.Errorf("line %d: unmatched %q", line, string(ch))
			}
			top := stack[len(stack)-1]
			if top != pairs[ch] {
				return fmt.Errorf("line %d: %q closes %q", line, string(ch), string(top))
			}
			stack = stack[:len(stack)-1]
			last = ch
			i++
		default:
			last = ch
			i++
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("unclosed %q", string(stack[len(stack)-1]))
	}
	return nil
}

// lineCommentPosition reports whether // starts a comment. JS/TS allow it
// anywhere; scss/less only at a statement boundary, so protocol slashes in
// url(https://...) stay literal.
func lineCommentPosition(last byte, templates bool) bool {
	if templates {
		return true
	}
	switch last {
	case 0, '{', '}', ';':
		return true
	}
	return false
}

// regexPosition reports whether a slash after last can open a regex literal
// rather than a division; after a value (identifier, closing bracket, quote)
// a slash divides.
func regexPosition(last byte) bool {
	return last == 0 || strings.IndexByte("=([{,;:!?&|+-*%^~<>", last) >= 0
}

// scanRegex consumes a /.../ literal, honoring escapes and character
// classes (an unescaped / inside [...] does not terminate). A newline before
// the closing slash means it was a division after all.
func scanRegex(body string, start int) (int, bool) {
	i := start + 1
	inClass := false
	for i < len(body) {
		switch body[i] {
		case '\\':
			i += 2
		case '\n':
			return 0, false
		case '[':
			inClass = true
			i++
		case ']':
			inClass = false
			i++
		case '/':
			if !inClass {
				return i + 1, true
			}
			i++
		default:
			i++
		}
	}
	return 0, false
}

// scanString consumes a single- or double-quoted string starting at start.
func scanString(body string, start int, quote byte) (int, int, error) {
	i := start + 1
	for i < len(body) {
		switch body[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1, 0, nil
		case '\n':
			return 0, 0, fmt.Errorf("unterminated string")
		default:
			i++
		}
	}
	return 0, 0, fmt.Errorf("unterminated string")
}

// scanTemplate consumes a backtick template literal, newlines allowed.
func scanTemplate(body string, start int) (int, int, error) {
	i := start + 1
	newlines := 0
	for i < len(body) {
		switch body[i] {
		case '\\':
			i += 2
		case '\n':
			newlines++
			i++
		case '`':
			return i + 1, newlines, nil
		default:
			i++
		}
	}
	return 0, 0, fmt.Errorf("unterminated template literal")
}

// voidElements never take a closing tag in HTML.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {}, "!doctype": {},
}

// checkHTML verifies open/close tag balance, ignoring void elements,
// comments, and anything inside script/style bodies.
func checkHTML(body string) error {
	var stack []string
	i := 0
	line := 1
	for i < len(body) {
		ch := body[i]
		if ch == '\n' {
			line++
			i++
			continue
		}
		if ch != '<' {
			i++
			continue
		}
		if strings.HasPrefix(body[i:], "<!--") {
			end := strings.Index(body[i+4:], "-->")
			if end == -1 {
				return fmt.Errorf("line %d: unterminated HTML comment", line)
			}
			line += strings.Count(body[i:i+4+end+3], "\n")
			i += 4 + end + 3
			continue
		}
		end := strings.IndexByte(body[i:], '>')
		if end == -1 {
			return fmt.Errorf("line %d: unterminated tag", line)
		}
		tag := body[i+1 : i+end]
		line += strings.Count(tag, "\n")
		i += end + 1

		closing := strings.HasPrefix(tag, "/")
		name := tagName(strings.TrimPrefix(tag, "/"))
		if name == "" {
			continue
		}
		if _, void := voidElements[name]; void {
			continue
		}
		if strings.HasSuffix(strings.TrimSpace(tag), "/") {
			continue // self-closing
		}
		if closing {
			if len(stack) == 0 {
				return fmt.Errorf("line %d: unmatched </%s>", line, name)
			}
			top := stack[len(stack)-1]
			if top != name {
				return fmt.Errorf("line %d: </%s> closes <%s>", line, name, top)
			}
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, name)
		// Skip raw text elements so embedded JS/CSS is not tag-scanned.
		if name == "script" || name == "style" {
			closeTag := "</" + name
			idx := strings.Index(strings.ToLower(body[i:]), closeTag)
			if idx == -1 {
				return fmt.Errorf("line %d: unclosed <%s>", line, name)
			}
			line += strings.Count(body[i:i+idx], "\n")
			i += idx
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("unclosed <%s>", stack[len(stack)-1])
	}
	return nil
}

// tagName extracts the lowercase element name from tag contents.
func tagName(tag string) string {
	tag = strings.TrimSpace(tag)
	endIdx := strings.IndexAny(tag, " \t\n/")
	if endIdx >= 0 {
		tag = tag[:endIdx]
	}
	return strings.ToLower(tag)
}
