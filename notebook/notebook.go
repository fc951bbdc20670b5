package notebook

// Notebook represents a complete notebook: document metadata plus an
// ordered list of cells.
type Notebook struct {
	Metadata    Metadata
	Cells       []Cell
	Format      int // nbformat major version
	FormatMinor int
}

// Metadata contains notebook-level information.
type Metadata struct {
	LanguageInfo *LanguageInfo
	KernelSpec   *KernelSpec
	// Custom metadata not covered by the fields above
	Custom map[string]any
}

// LanguageInfo describes the language of the notebook's code cells.
type LanguageInfo struct {
	Name          string
	PygmentsLexer string
	FileExtension string
	MimeType      string
	Version       string
}

// KernelSpec identifies the kernel the notebook was authored against.
type KernelSpec struct {
	Name        string
	DisplayName string
	Language    string
}

// NewNotebook creates a new empty notebook at the current format version.
func NewNotebook() *Notebook {
	return &Notebook{
		Metadata:    Metadata{Custom: make(map[string]any)},
		Cells:       make([]Cell, 0),
		Format:      4,
		FormatMinor: 5,
	}
}

// AddCell appends a cell to the notebook.
func (n *Notebook) AddCell(cell Cell) {
	n.Cells = append(n.Cells, cell)
}

// CellCount returns the number of cells.
func (n *Notebook) CellCount() int {
	return len(n.Cells)
}

// Language resolves the language tag for code cells. Precedence follows
// the interchange format: the pygments lexer identifier, then the language
// name, then the kernelspec language. Returns "" when none is present.
func (n *Notebook) Language() string {
	if li := n.Metadata.LanguageInfo; li != nil {
		if li.PygmentsLexer != "" {
			return li.PygmentsLexer
		}
		if li.Name != "" {
			return li.Name
		}
	}
	if ks := n.Metadata.KernelSpec; ks != nil && ks.Language != "" {
		return ks.Language
	}
	return ""
}
