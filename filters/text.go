package filters

import (
	"strings"
	"unicode"
)

// indentUnit is the fixed indentation applied by Indent: four spaces, the
// body indentation expected by reStructuredText directives.
const indentUnit = "    "

// Indent prefixes every line of text with the fixed indent unit. Empty
// input yields empty output, and a trailing newline is not followed by a
// dangling indent.
func Indent(text string) string {
	return IndentN(text, len(indentUnit))
}

// IndentN prefixes every line of text with n spaces.
func IndentN(text string, n int) string {
	if text == "" || n <= 0 {
		return text
	}
	prefix := strings.Repeat(" ", n)
	out := prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
	// Do not leave an indent hanging after a final newline.
	if strings.HasSuffix(out, "\n"+prefix) {
		out = out[:len(out)-len(prefix)]
	}
	return out
}

// StripDollars removes a single leading and trailing literal "$" delimiter
// pair, as used around LaTeX math. The pair is removed only when both
// delimiters are present and something remains between them; otherwise the
// input is returned unchanged.
func StripDollars(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 || !strings.HasPrefix(trimmed, "$") || !strings.HasSuffix(trimmed, "$") {
		return text
	}
	inner := trimmed[1 : len(trimmed)-1]
	if strings.TrimSpace(inner) == "" {
		return text
	}
	return inner
}

// CommentLines prefixes every line of text with a comment marker.
func CommentLines(text, prefix string) string {
	return prefix + strings.Join(strings.Split(text, "\n"), "\n"+prefix)
}

// GetLines returns the half-open line range [start, end) of text. Negative
// start is treated as 0; an end beyond the last line is clamped.
func GetLines(text string, start, end int) string {
	lines := strings.Split(text, "\n")
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}

// AddPrompts prefixes the first line of code with first and every
// continuation line with cont, interpreter-transcript style.
func AddPrompts(code, first, cont string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	out = append(out, first+lines[0])
	for _, line := range lines[1:] {
		out = append(out, cont+line)
	}
	return strings.Join(out, "\n")
}

// WrapText wraps each line of text to the given width without breaking
// words. Words longer than the width are left intact.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(word)
		lineLen += 1 + len(word)
	}
	return b.String()
}

// AsciiOnly replaces every non-ASCII rune with "?" so the result is safe
// for ASCII-only sinks.
func AsciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '?'
		}
		return r
	}, s)
}
