package rst

import (
	"strings"

	"github.com/tsawler/stilus/filters"
	"github.com/tsawler/stilus/notebook"
)

// RSTBlocks is the reStructuredText profile: overrides of the base blocks
// that emit RST directives. It holds a reference to the base block set and
// composes its bodies where the shared behavior applies.
type RSTBlocks struct {
	Base Blocks
}

// NewBlocks returns the reStructuredText block set layered over the null
// base.
func NewBlocks() Blocks {
	return RSTBlocks{Base: BaseBlocks{}}
}

// Input emits the code directive for a cell's source. Whitespace-only
// source contributes nothing; its outputs are still rendered by their own
// blocks.
func (r RSTBlocks) Input(ctx *Context, cell *notebook.CodeCell) string {
	if strings.TrimSpace(cell.Source) == "" {
		return ""
	}
	source := strings.TrimRight(cell.Source, "\n")
	return ".. code:: " + ctx.Language + "\n\n" + filters.Indent(source)
}

// OutputPrompt emits nothing: RST carries no prompt between input and
// output.
func (r RSTBlocks) OutputPrompt(ctx *Context, out notebook.Output) string {
	return r.Base.OutputPrompt(ctx, out)
}

// ExecuteResult defers to the base body: resolve one representation and
// dispatch to its Data block.
func (r RSTBlocks) ExecuteResult(ctx *Context, out *notebook.ExecuteResult) string {
	return r.Base.ExecuteResult(ctx, out)
}

// DisplayData defers to the base body.
func (r RSTBlocks) DisplayData(ctx *Context, out *notebook.DisplayData) string {
	return r.Base.DisplayData(ctx, out)
}

// Stream emits a parsed-literal block holding the stream text.
func (r RSTBlocks) Stream(ctx *Context, out *notebook.Stream) string {
	return ".. parsed-literal::\n\n" + filters.Indent(strings.TrimRight(out.Text, "\n"))
}

// Error emits a literal block marker and composes the base body, which
// walks the traceback through TracebackLine.
func (r RSTBlocks) Error(ctx *Context, out *notebook.ErrorOutput) string {
	return "::\n\n" + r.Base.Error(ctx, out)
}

// TracebackLine strips ANSI color sequences and indents the line into the
// enclosing literal block.
func (r RSTBlocks) TracebackLine(ctx *Context, line string) string {
	return filters.Indent(filters.StripAnsi(line))
}

// DataMarkdown converts markdown content into RST.
func (r RSTBlocks) DataMarkdown(ctx *Context, content string) string {
	return strings.TrimRight(ctx.Convert(content), "\n")
}

// DataLatex emits a math directive, removing the math-mode dollar
// delimiters the kernel wraps around display math.
func (r RSTBlocks) DataLatex(ctx *Context, content string) string {
	content = filters.StripDollars(strings.TrimRight(content, "\n"))
	return ".. math::\n\n" + filters.Indent(content)
}

// DataSVG emits an image directive referencing the materialized file.
func (r RSTBlocks) DataSVG(ctx *Context, filename string) string {
	return ".. image:: " + filters.PercentEncode(filename)
}

// DataPNG emits an image directive referencing the materialized file.
func (r RSTBlocks) DataPNG(ctx *Context, filename string) string {
	return ".. image:: " + filters.PercentEncode(filename)
}

// DataJPEG emits an image directive referencing the materialized file.
func (r RSTBlocks) DataJPEG(ctx *Context, filename string) string {
	return ".. image:: " + filters.PercentEncode(filename)
}

// DataText emits a parsed-literal block holding the plain text.
func (r RSTBlocks) DataText(ctx *Context, content string) string {
	return ".. parsed-literal::\n\n" + filters.Indent(strings.TrimRight(content, "\n"))
}

// DataHTML emits a raw HTML passthrough directive.
func (r RSTBlocks) DataHTML(ctx *Context, content string) string {
	return ".. raw:: html\n\n" + filters.Indent(strings.TrimRight(content, "\n"))
}

// MarkdownCell converts the cell source and emits it verbatim, with no
// further wrapping.
func (r RSTBlocks) MarkdownCell(ctx *Context, cell *notebook.MarkdownCell) string {
	return strings.TrimRight(ctx.Convert(cell.Source), "\n")
}

// RawCell passes the source through untouched when its format tag is
// allowed; otherwise it contributes nothing.
func (r RSTBlocks) RawCell(ctx *Context, cell *notebook.RawCell) string {
	if !ctx.RawAllowed(cell.Format) {
		ctx.warnf(WarnRawSkipped, "raw cell with format %q not in allowed set", cell.Format)
		return ""
	}
	return strings.TrimRight(cell.Source, "\n")
}

// HeadingCell rebuilds the heading as markdown (level markers plus the
// source with line breaks collapsed to spaces) and converts it.
func (r RSTBlocks) HeadingCell(ctx *Context, cell *notebook.HeadingCell) string {
	level := cell.Level
	if level < 1 {
		level = 1
	}
	title := strings.TrimSpace(strings.ReplaceAll(cell.Source, "\n", " "))
	heading := strings.Repeat("#", level) + " " + title
	return strings.TrimRight(ctx.Convert(heading), "\n")
}

// UnknownCell emits a diagnostic naming the unrecognized kind. Degrading
// to text keeps the render total: unknown kinds are never an error.
func (r RSTBlocks) UnknownCell(ctx *Context, cell notebook.Cell) string {
	kind := cell.Type().String()
	if uc, ok := cell.(*notebook.UnknownCell); ok && uc.CellKind != "" {
		kind = uc.CellKind
	}
	return "unknown type  " + kind
}
