package rst

import (
	"strings"

	"github.com/tsawler/stilus/notebook"
)

// Renderer converts a notebook into reStructuredText (or whatever dialect
// its profile's blocks emit). A Renderer is immutable and safe for
// concurrent use; each Render call owns its own Context.
type Renderer struct {
	profile Profile
}

// New creates a Renderer for the given profile. Zero-value profile fields
// fall back to the RST defaults.
func New(profile Profile) *Renderer {
	return &Renderer{profile: profile.normalized()}
}

// NewDefault creates a Renderer with the built-in RST profile.
func NewDefault() *Renderer {
	return New(DefaultProfile())
}

// Render walks the notebook's cells in order and returns the rendered
// text, the resource names the text references (in first-reference order),
// and any warnings. It performs no I/O and does not fail on well-formed
// input: unrecognized kinds degrade to diagnostics or omission.
func (r *Renderer) Render(nb *notebook.Notebook) (string, []string, []Warning) {
	ctx := r.newContext(nb)

	var fragments []string
	for _, cell := range nb.Cells {
		fragments = append(fragments, r.renderCell(ctx, cell)...)
	}

	return joinFragments(fragments), ctx.resources, ctx.warnings
}

func (r *Renderer) newContext(nb *notebook.Notebook) *Context {
	raw := make(map[string]bool, len(r.profile.RawFormats))
	for _, f := range r.profile.RawFormats {
		raw[strings.ToLower(f)] = true
	}
	lang, known := r.profile.resolveLanguage(nb)
	ctx := &Context{
		Blocks:     r.profile.Blocks,
		Language:   lang,
		Priority:   r.profile.Priority,
		Convert:    r.profile.MarkdownConvert,
		rawFormats: raw,
	}
	if !known {
		ctx.warnf(WarnUnknownLanguage, "no highlighter lexer for language %q", lang)
	}
	return ctx
}

// renderCell dispatches one cell to the matching block. Cells are
// processed independently; no state survives from one to the next.
func (r *Renderer) renderCell(ctx *Context, cell notebook.Cell) []string {
	blocks := ctx.Blocks

	switch c := cell.(type) {
	case *notebook.CodeCell:
		fragments := []string{blocks.Input(ctx, c)}
		for _, out := range c.Outputs {
			fragments = append(fragments, blocks.OutputPrompt(ctx, out))
			fragments = append(fragments, r.renderOutput(ctx, out))
		}
		return fragments

	case *notebook.MarkdownCell:
		return []string{blocks.MarkdownCell(ctx, c)}

	case *notebook.RawCell:
		return []string{blocks.RawCell(ctx, c)}

	case *notebook.HeadingCell:
		return []string{blocks.HeadingCell(ctx, c)}

	default:
		ctx.warnf(WarnUnknownCell, "cell kind %q not recognized", cellKind(cell))
		return []string{blocks.UnknownCell(ctx, cell)}
	}
}

// renderOutput dispatches one code cell output by kind.
func (r *Renderer) renderOutput(ctx *Context, out notebook.Output) string {
	blocks := ctx.Blocks

	switch o := out.(type) {
	case *notebook.ExecuteResult:
		return blocks.ExecuteResult(ctx, o)
	case *notebook.DisplayData:
		return blocks.DisplayData(ctx, o)
	case *notebook.Stream:
		return blocks.Stream(ctx, o)
	case *notebook.ErrorOutput:
		return blocks.Error(ctx, o)
	default:
		ctx.warnf(WarnUnknownOutput, "output kind %q not recognized", out.Type())
		return ""
	}
}

func cellKind(cell notebook.Cell) string {
	if uc, ok := cell.(*notebook.UnknownCell); ok && uc.CellKind != "" {
		return uc.CellKind
	}
	return cell.Type().String()
}

// joinFragments drops empty fragments, trims trailing blank space from the
// rest, and joins them with blank lines. Relative fragment order is
// preserved exactly. The result ends with a single newline.
func joinFragments(fragments []string) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimRight(f, " \t\n")
		if f == "" {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, "\n\n") + "\n"
}
