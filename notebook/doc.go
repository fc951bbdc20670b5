// Package notebook provides the intermediate representation (IR) for Jupyter
// notebook content.
//
// This package defines the user-facing data structures that represent the
// semantic structure of a notebook. The reader deserializes the notebook
// interchange format (nbformat v3 and v4) into these types, making them the
// primary API for consuming notebook content.
//
// # Notebook Structure
//
// The [Notebook] type represents a complete notebook with metadata and an
// ordered list of cells:
//
//	nb, err := notebook.Open("analysis.ipynb")
//	for _, cell := range nb.Cells {
//	    fmt.Println(cell.Type(), cell.Text())
//	}
//
// # Cells
//
// All cell content implements the [Cell] interface. The concrete types are:
//
//   - [CodeCell] - executable source plus its ordered outputs
//   - [MarkdownCell] - narrative text in markdown
//   - [RawCell] - pass-through text gated by a format tag
//   - [HeadingCell] - heading text with a level (nbformat v3)
//   - [UnknownCell] - any unrecognized cell kind
//
// # Outputs
//
// Code cell results implement the [Output] interface:
//
//   - [ExecuteResult] and [DisplayData] - a [MimeBundle] of alternative
//     representations of one value
//   - [Stream] - stdout/stderr text
//   - [ErrorOutput] - an exception with its traceback lines
//
// All types are read-only inputs to a conversion pass; nothing in this
// package is mutated by rendering.
package notebook
