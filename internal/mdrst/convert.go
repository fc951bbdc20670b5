package mdrst

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headingMarkers maps heading levels 1-6 to their underline runes, in the
// convention used by the Python documentation toolchain.
var headingMarkers = []rune{'=', '-', '~', '^', '"', '\''}

// Convert renders markdown source as reStructuredText. It never fails:
// source that produces no renderable content yields an empty string.
func Convert(source string) string {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	c := &converter{source: src}
	out := c.blocks(doc)
	if out == "" {
		return ""
	}
	return out + "\n"
}

type converter struct {
	source []byte
}

// blocks renders the block children of n, separated by blank lines. The
// result carries no trailing newline.
func (c *converter) blocks(n ast.Node) string {
	var parts []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if b := c.block(child); b != "" {
			parts = append(parts, b)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (c *converter) block(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Heading:
		return c.heading(n)
	case *ast.Paragraph:
		return c.paragraph(n)
	case *ast.TextBlock:
		return c.inlines(n)
	case *ast.FencedCodeBlock:
		return c.codeBlock(string(n.Language(c.source)), c.rawLines(n))
	case *ast.CodeBlock:
		return c.codeBlock("", c.rawLines(n))
	case *ast.Blockquote:
		return indent(c.blocks(n))
	case *ast.List:
		return c.list(n)
	case *ast.ThematicBreak:
		return "----"
	case *ast.HTMLBlock:
		return c.htmlBlock(n)
	default:
		// No RST equivalent: degrade to the rendered children.
		if n.HasChildren() {
			return c.blocks(n)
		}
		return ""
	}
}

func (c *converter) heading(n *ast.Heading) string {
	title := strings.ReplaceAll(c.inlines(n), "\n", " ")
	if strings.TrimSpace(title) == "" {
		return ""
	}
	level := n.Level
	if level < 1 {
		level = 1
	}
	if level > len(headingMarkers) {
		level = len(headingMarkers)
	}
	marker := headingMarkers[level-1]
	return title + "\n" + strings.Repeat(string(marker), len([]rune(title)))
}

func (c *converter) paragraph(n *ast.Paragraph) string {
	// A paragraph holding nothing but one image becomes an image directive.
	if img, ok := n.FirstChild().(*ast.Image); ok && n.ChildCount() == 1 {
		return c.imageBlock(img)
	}
	return c.inlines(n)
}

func (c *converter) codeBlock(lang, body string) string {
	if body == "" {
		return ""
	}
	body = strings.TrimRight(body, "\n")
	if lang == "" {
		return "::\n\n" + indent(body)
	}
	return ".. code:: " + lang + "\n\n" + indent(body)
}

func (c *converter) htmlBlock(n *ast.HTMLBlock) string {
	raw := strings.TrimRight(c.rawLines(n), "\n")
	if n.HasClosure() {
		closure := n.ClosureLine
		raw += "\n" + strings.TrimRight(string(closure.Value(c.source)), "\n")
	}
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return ".. raw:: html\n\n" + indent(raw)
}

func (c *converter) imageBlock(img *ast.Image) string {
	out := ".. image:: " + string(img.Destination)
	if alt := c.inlines(img); strings.TrimSpace(alt) != "" {
		out += "\n" + indent(":alt: "+alt)
	}
	return out
}

func (c *converter) list(n *ast.List) string {
	var items []string
	index := n.Start
	if index == 0 {
		index = 1
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		var marker string
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", index)
			index++
		} else {
			marker = "- "
		}
		body := c.blocks(item)
		items = append(items, hangingIndent(marker, body))
	}
	return strings.Join(items, "\n")
}

// inlines renders the inline children of n as RST inline markup.
func (c *converter) inlines(n ast.Node) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.inline(&b, child)
	}
	return b.String()
}

func (c *converter) inline(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		b.WriteString(escapeText(string(n.Segment.Value(c.source))))
		if n.HardLineBreak() || n.SoftLineBreak() {
			b.WriteByte('\n')
		}
	case *ast.String:
		b.WriteString(escapeText(string(n.Value)))
	case *ast.CodeSpan:
		b.WriteString("``")
		b.WriteString(c.plainText(n))
		b.WriteString("``")
	case *ast.Emphasis:
		marker := "*"
		if n.Level >= 2 {
			marker = "**"
		}
		b.WriteString(marker)
		b.WriteString(c.inlines(n))
		b.WriteString(marker)
	case *ast.Link:
		label := strings.TrimSpace(c.inlines(n))
		dest := string(n.Destination)
		if label == "" {
			b.WriteString(dest)
			return
		}
		b.WriteString("`" + label + " <" + dest + ">`__")
	case *ast.AutoLink:
		b.Write(n.URL(c.source))
	case *ast.Image:
		// Inline position cannot hold a directive; degrade to a link.
		label := strings.TrimSpace(c.inlines(n))
		if label == "" {
			label = "image"
		}
		b.WriteString("`" + label + " <" + string(n.Destination) + ">`__")
	case *ast.RawHTML:
		b.WriteString(c.rawSegments(n.Segments))
	default:
		if n.HasChildren() {
			b.WriteString(c.inlines(n))
		}
	}
}

// plainText collects the unescaped text content beneath n.
func (c *converter) plainText(n ast.Node) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(c.source))
			continue
		}
		b.WriteString(c.plainText(child))
	}
	return b.String()
}

// rawLines joins the raw source lines attached to a block node.
func (c *converter) rawLines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

func (c *converter) rawSegments(segs *text.Segments) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"`", "\\`",
)

// escapeText escapes characters that reStructuredText would otherwise
// treat as inline markup.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// indent prefixes every line with four spaces.
func indent(s string) string {
	if s == "" {
		return s
	}
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}

// hangingIndent prefixes the first line with marker and continuation lines
// with matching whitespace.
func hangingIndent(marker, body string) string {
	pad := strings.Repeat(" ", len(marker))
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = marker + line
			continue
		}
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
