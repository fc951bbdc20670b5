package notebook

// CellType represents the kind of notebook cell.
type CellType int

const (
	CellTypeUnknown CellType = iota
	CellTypeCode
	CellTypeMarkdown
	CellTypeRaw
	CellTypeHeading
)

func (ct CellType) String() string {
	switch ct {
	case CellTypeCode:
		return "code"
	case CellTypeMarkdown:
		return "markdown"
	case CellTypeRaw:
		return "raw"
	case CellTypeHeading:
		return "heading"
	default:
		return "unknown"
	}
}

// Cell is the interface for all notebook cells.
type Cell interface {
	Type() CellType
	Text() string
}

// CodeCell is an executable cell: source text plus the ordered outputs the
// kernel produced for it.
type CodeCell struct {
	Source         string
	ExecutionCount int // 0 when the cell was never executed
	Outputs        []Output
}

func (c *CodeCell) Type() CellType { return CellTypeCode }
func (c *CodeCell) Text() string   { return c.Source }

// MarkdownCell is a narrative cell containing markdown source.
type MarkdownCell struct {
	Source string
}

func (c *MarkdownCell) Type() CellType { return CellTypeMarkdown }
func (c *MarkdownCell) Text() string   { return c.Source }

// RawCell is pass-through content tagged with a destination format.
// A cell with no format tag matches no destination.
type RawCell struct {
	Source string
	Format string // e.g. "text/restructuredtext"; empty when untagged
}

func (c *RawCell) Type() CellType { return CellTypeRaw }
func (c *RawCell) Text() string   { return c.Source }

// HeadingCell is a heading with a level (nbformat v3; v4 folds headings
// into markdown cells).
type HeadingCell struct {
	Source string
	Level  int // 1-6
}

func (c *HeadingCell) Type() CellType { return CellTypeHeading }
func (c *HeadingCell) Text() string   { return c.Source }

// UnknownCell preserves a cell whose kind the reader did not recognize.
type UnknownCell struct {
	CellKind string // the raw cell_type value
	Source   string
}

func (c *UnknownCell) Type() CellType { return CellTypeUnknown }
func (c *UnknownCell) Text() string   { return c.Source }
