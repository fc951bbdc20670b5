// Package rst renders notebook content as reStructuredText.
//
// The package is a block-dispatch rendering engine. Every renderable
// concept (code cell input, stream output, each representation kind, and
// so on) is a named block: one method on the [Blocks] interface.
// [BaseBlocks] supplies the null defaults and [RSTBlocks] overrides them
// with reStructuredText bodies while holding a reference to the base for
// super-call composition. Callers can derive further: embed the resolved
// [Blocks] value in a struct, override the methods to change, and call the
// embedded value where the default body should appear.
//
//	type loud struct{ rst.Blocks }
//
//	func (l loud) Stream(ctx *rst.Context, out *notebook.Stream) string {
//	    return ".. note:: kernel output\n\n" + l.Blocks.Stream(ctx, out)
//	}
//
// The [Renderer] walks the notebook's cells in order, dispatches each cell
// and each nested output to the matching block, and joins the emitted
// fragments. Rendering is a single synchronous pass over an immutable
// notebook; it performs no I/O and never fails on a well-formed document —
// unrecognized kinds degrade to diagnostics or omission, reported as
// warnings.
package rst
