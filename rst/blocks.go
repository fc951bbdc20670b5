package rst

import (
	"strings"

	"github.com/tsawler/stilus/notebook"
)

// Context carries the shared state one render pass threads through the
// blocks: resolved configuration plus the warning and resource sinks. A
// Context belongs to a single Render call and is not safe for reuse.
type Context struct {
	// Blocks is the most-derived block set in effect. Default block
	// bodies dispatch through it so overrides participate even when the
	// call starts in a less-derived body.
	Blocks Blocks

	// Language is the resolved language tag for code cell inputs.
	Language string

	// Priority is the representation preference order (see ResolveMime).
	Priority []notebook.MimeType

	// Convert transforms markdown source into the destination dialect.
	Convert func(string) string

	rawFormats map[string]bool
	warnings   []Warning
	resources  []string
}

// RawAllowed reports whether a raw cell's format tag is in the allowed
// set. Comparison is case-insensitive; an empty tag never matches.
func (ctx *Context) RawAllowed(format string) bool {
	if format == "" {
		return false
	}
	return ctx.rawFormats[strings.ToLower(format)]
}

// AddResource records a referenced resource name for the caller to
// materialize.
func (ctx *Context) AddResource(name string) {
	ctx.resources = append(ctx.resources, name)
}

// Blocks is the closed set of named rendering rules. Each method maps one
// element or output (plus the shared context) to an emitted text fragment;
// an empty fragment means the block contributes nothing.
type Blocks interface {
	// Code cells
	Input(ctx *Context, cell *notebook.CodeCell) string
	OutputPrompt(ctx *Context, out notebook.Output) string
	ExecuteResult(ctx *Context, out *notebook.ExecuteResult) string
	DisplayData(ctx *Context, out *notebook.DisplayData) string
	Stream(ctx *Context, out *notebook.Stream) string
	Error(ctx *Context, out *notebook.ErrorOutput) string
	TracebackLine(ctx *Context, line string) string

	// Representation kinds
	DataMarkdown(ctx *Context, content string) string
	DataLatex(ctx *Context, content string) string
	DataSVG(ctx *Context, filename string) string
	DataPNG(ctx *Context, filename string) string
	DataJPEG(ctx *Context, filename string) string
	DataText(ctx *Context, content string) string
	DataHTML(ctx *Context, content string) string

	// Other cell kinds
	MarkdownCell(ctx *Context, cell *notebook.MarkdownCell) string
	RawCell(ctx *Context, cell *notebook.RawCell) string
	HeadingCell(ctx *Context, cell *notebook.HeadingCell) string
	UnknownCell(ctx *Context, cell notebook.Cell) string
}

// BaseBlocks is the base profile: the default body for every block. Most
// bodies emit nothing; the ones that do (result dispatch, error walks)
// hold the behavior every dialect shares. Derived block sets override
// selectively and may invoke these bodies to compose their own.
type BaseBlocks struct{}

func (BaseBlocks) Input(*Context, *notebook.CodeCell) string { return "" }

func (BaseBlocks) OutputPrompt(*Context, notebook.Output) string { return "" }

func (BaseBlocks) Stream(*Context, *notebook.Stream) string { return "" }

func (BaseBlocks) TracebackLine(_ *Context, line string) string { return line }

func (BaseBlocks) DataMarkdown(*Context, string) string { return "" }

func (BaseBlocks) DataLatex(*Context, string) string { return "" }

func (BaseBlocks) DataSVG(*Context, string) string { return "" }

func (BaseBlocks) DataPNG(*Context, string) string { return "" }

func (BaseBlocks) DataJPEG(*Context, string) string { return "" }

func (BaseBlocks) DataText(*Context, string) string { return "" }

func (BaseBlocks) DataHTML(*Context, string) string { return "" }

func (BaseBlocks) MarkdownCell(*Context, *notebook.MarkdownCell) string { return "" }

func (BaseBlocks) RawCell(*Context, *notebook.RawCell) string { return "" }

func (BaseBlocks) HeadingCell(*Context, *notebook.HeadingCell) string { return "" }

func (BaseBlocks) UnknownCell(*Context, notebook.Cell) string { return "" }

// ExecuteResult resolves the representation to render and dispatches to
// the matching Data block of the most-derived block set.
func (BaseBlocks) ExecuteResult(ctx *Context, out *notebook.ExecuteResult) string {
	return renderData(ctx, out.Data, out.Metadata)
}

// DisplayData behaves exactly like ExecuteResult: one representation is
// chosen and rendered.
func (BaseBlocks) DisplayData(ctx *Context, out *notebook.DisplayData) string {
	return renderData(ctx, out.Data, out.Metadata)
}

// Error renders every traceback line through the TracebackLine block,
// preserving original order.
func (BaseBlocks) Error(ctx *Context, out *notebook.ErrorOutput) string {
	lines := make([]string, 0, len(out.Traceback))
	for _, line := range out.Traceback {
		lines = append(lines, ctx.Blocks.TracebackLine(ctx, line))
	}
	return strings.Join(lines, "\n")
}

// renderData picks one representation from the bundle by priority and
// invokes the block registered for that kind. A bundle with no matching
// kind contributes no text.
func renderData(ctx *Context, data notebook.MimeBundle, md notebook.OutputMetadata) string {
	mime, ok := ResolveMime(data, ctx.Priority)
	if !ok {
		ctx.warnf(WarnOmittedOutput, "no renderable representation among %d offered", len(data))
		return ""
	}

	switch mime {
	case notebook.MIMEMarkdown:
		return ctx.Blocks.DataMarkdown(ctx, data[mime])
	case notebook.MIMELatex:
		return ctx.Blocks.DataLatex(ctx, data[mime])
	case notebook.MIMEText:
		return ctx.Blocks.DataText(ctx, data[mime])
	case notebook.MIMEHTML:
		return ctx.Blocks.DataHTML(ctx, data[mime])
	case notebook.MIMESVG, notebook.MIMEPNG, notebook.MIMEJPEG:
		name := md.Filenames[mime]
		if name == "" {
			ctx.warnf(WarnMissingFilename, "%s output has no resolved filename", mime)
			return ""
		}
		ctx.AddResource(name)
		switch mime {
		case notebook.MIMESVG:
			return ctx.Blocks.DataSVG(ctx, name)
		case notebook.MIMEPNG:
			return ctx.Blocks.DataPNG(ctx, name)
		default:
			return ctx.Blocks.DataJPEG(ctx, name)
		}
	default:
		ctx.warnf(WarnOmittedOutput, "no block registered for %s", mime)
		return ""
	}
}
