package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open reads a notebook file (nbformat v3 or v4) into a Notebook.
func Open(filename string) (*Notebook, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses notebook JSON from an io.Reader. The stream is decoded
// as UTF-8; a leading byte-order mark is tolerated and stripped.
func OpenReader(r io.Reader) (*Notebook, error) {
	decoded := transform.NewReader(r, unicode.UTF8BOM.NewDecoder())

	var raw rawNotebook
	dec := json.NewDecoder(decoded)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing notebook JSON: %w", err)
	}

	return raw.build()
}

// Parse parses notebook JSON held in memory.
func Parse(data []byte) (*Notebook, error) {
	return OpenReader(bytes.NewReader(data))
}

// multilineText accepts the interchange format's two spellings of text:
// a plain string or a list of line strings joined verbatim.
type multilineText string

func (m *multilineText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var lines []string
		if err := json.Unmarshal(data, &lines); err != nil {
			return err
		}
		*m = multilineText(strings.Join(lines, ""))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = multilineText(s)
	return nil
}

// bundleContent accepts any JSON value a mime bundle entry may carry: a
// plain string, a list of line strings joined verbatim, or structured data
// (objects, numbers), which is kept as its raw JSON text. Kinds the
// renderer does not handle must still load so the resolver can omit them.
type bundleContent string

func (b *bundleContent) UnmarshalJSON(data []byte) error {
	var m multilineText
	if err := m.UnmarshalJSON(data); err == nil {
		*b = bundleContent(m)
		return nil
	}
	*b = bundleContent(bytes.TrimSpace(data))
	return nil
}

type rawNotebook struct {
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
	Metadata      rawMetadata    `json:"metadata"`
	Cells         []rawCell      `json:"cells"`      // v4
	Worksheets    []rawWorksheet `json:"worksheets"` // v3
}

type rawWorksheet struct {
	Cells []rawCell `json:"cells"`
}

type rawMetadata struct {
	LanguageInfo *rawLanguageInfo `json:"language_info"`
	KernelSpec   *rawKernelSpec   `json:"kernelspec"`
	Language     string           `json:"language"` // v3
}

type rawLanguageInfo struct {
	Name          string `json:"name"`
	PygmentsLexer string `json:"pygments_lexer"`
	FileExtension string `json:"file_extension"`
	MimeType      string `json:"mimetype"`
	Version       string `json:"version"`
}

type rawKernelSpec struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
}

type rawCell struct {
	CellType       string          `json:"cell_type"`
	Source         multilineText   `json:"source"`
	Input          multilineText   `json:"input"` // v3 code cells
	Level          int             `json:"level"` // v3 heading cells
	Metadata       rawCellMetadata `json:"metadata"`
	ExecutionCount *int            `json:"execution_count"`
	PromptNumber   *int            `json:"prompt_number"` // v3
	Outputs        []rawOutput     `json:"outputs"`
}

type rawCellMetadata struct {
	RawMimetype string `json:"raw_mimetype"`
	Format      string `json:"format"` // older spelling of raw_mimetype
}

type rawOutput struct {
	OutputType     string                   `json:"output_type"`
	Name           string                   `json:"name"`   // v4 stream name
	Stream         string                   `json:"stream"` // v3 stream name
	Text           multilineText            `json:"text"`   // stream text / v3 text/plain
	Data           map[string]bundleContent `json:"data"`   // v4 mime bundle
	Metadata       rawOutputMetadata        `json:"metadata"`
	ExecutionCount *int                     `json:"execution_count"`
	PromptNumber   *int                     `json:"prompt_number"` // v3
	Ename          string                   `json:"ename"`
	Evalue         string                   `json:"evalue"`
	Traceback      []string                 `json:"traceback"`

	// v3 inline representations
	HTML       multilineText `json:"html"`
	Latex      multilineText `json:"latex"`
	Markdown   multilineText `json:"markdown"`
	PNG        multilineText `json:"png"`
	JPEG       multilineText `json:"jpeg"`
	SVG        multilineText `json:"svg"`
	JavaScript multilineText `json:"javascript"`
}

type rawOutputMetadata struct {
	Filenames map[string]string `json:"filenames"`
}

// build converts the raw JSON structure into the notebook IR, validating
// the top-level shape along the way.
func (raw *rawNotebook) build() (*Notebook, error) {
	nb := NewNotebook()
	nb.Format = raw.NBFormat
	nb.FormatMinor = raw.NBFormatMinor

	if li := raw.Metadata.LanguageInfo; li != nil {
		nb.Metadata.LanguageInfo = &LanguageInfo{
			Name:          li.Name,
			PygmentsLexer: li.PygmentsLexer,
			FileExtension: li.FileExtension,
			MimeType:      li.MimeType,
			Version:       li.Version,
		}
	} else if raw.Metadata.Language != "" {
		// v3 kept a bare language name at the top of metadata
		nb.Metadata.LanguageInfo = &LanguageInfo{Name: raw.Metadata.Language}
	}
	if ks := raw.Metadata.KernelSpec; ks != nil {
		nb.Metadata.KernelSpec = &KernelSpec{
			Name:        ks.Name,
			DisplayName: ks.DisplayName,
			Language:    ks.Language,
		}
	}

	cells := raw.Cells
	if cells == nil {
		if raw.Worksheets == nil {
			return nil, fmt.Errorf("notebook has neither cells nor worksheets")
		}
		for _, ws := range raw.Worksheets {
			cells = append(cells, ws.Cells...)
		}
	}

	for _, rc := range cells {
		nb.AddCell(rc.build())
	}

	return nb, nil
}

func (rc *rawCell) build() Cell {
	switch rc.CellType {
	case "code":
		source := string(rc.Source)
		if source == "" && rc.Input != "" {
			source = string(rc.Input) // v3 spelling
		}
		cell := &CodeCell{Source: source}
		if rc.ExecutionCount != nil {
			cell.ExecutionCount = *rc.ExecutionCount
		} else if rc.PromptNumber != nil {
			cell.ExecutionCount = *rc.PromptNumber
		}
		for _, ro := range rc.Outputs {
			cell.Outputs = append(cell.Outputs, ro.build())
		}
		return cell

	case "markdown":
		return &MarkdownCell{Source: string(rc.Source)}

	case "raw":
		format := rc.Metadata.RawMimetype
		if format == "" {
			format = rc.Metadata.Format
		}
		return &RawCell{Source: string(rc.Source), Format: format}

	case "heading":
		level := rc.Level
		if level < 1 {
			level = 1
		}
		return &HeadingCell{Source: string(rc.Source), Level: level}

	default:
		return &UnknownCell{CellKind: rc.CellType, Source: string(rc.Source)}
	}
}

func (ro *rawOutput) build() Output {
	switch ro.OutputType {
	case "execute_result", "pyout":
		out := &ExecuteResult{
			Data:     ro.bundle(),
			Metadata: ro.outputMetadata(),
		}
		if ro.ExecutionCount != nil {
			out.ExecutionCount = *ro.ExecutionCount
		} else if ro.PromptNumber != nil {
			out.ExecutionCount = *ro.PromptNumber
		}
		return out

	case "display_data":
		return &DisplayData{Data: ro.bundle(), Metadata: ro.outputMetadata()}

	case "stream":
		name := ro.Name
		if name == "" {
			name = ro.Stream // v3 spelling
		}
		if name == "" {
			name = "stdout"
		}
		return &Stream{Name: name, Text: string(ro.Text)}

	case "error", "pyerr":
		return &ErrorOutput{
			Name:      ro.Ename,
			Value:     ro.Evalue,
			Traceback: ro.Traceback,
		}

	default:
		return &UnknownOutput{OutputKind: ro.OutputType}
	}
}

// bundle assembles the mime bundle from either the v4 data mapping or the
// v3 inline fields.
func (ro *rawOutput) bundle() MimeBundle {
	b := make(MimeBundle)
	for mime, content := range ro.Data {
		b[MimeType(mime)] = string(content)
	}
	if len(b) > 0 {
		return b
	}

	// v3 stored each representation as its own field
	if ro.Text != "" {
		b[MIMEText] = string(ro.Text)
	}
	if ro.HTML != "" {
		b[MIMEHTML] = string(ro.HTML)
	}
	if ro.Latex != "" {
		b[MIMELatex] = string(ro.Latex)
	}
	if ro.Markdown != "" {
		b[MIMEMarkdown] = string(ro.Markdown)
	}
	if ro.PNG != "" {
		b[MIMEPNG] = string(ro.PNG)
	}
	if ro.JPEG != "" {
		b[MIMEJPEG] = string(ro.JPEG)
	}
	if ro.SVG != "" {
		b[MIMESVG] = string(ro.SVG)
	}
	if ro.JavaScript != "" {
		b[MIMEJavaScript] = string(ro.JavaScript)
	}
	return b
}

func (ro *rawOutput) outputMetadata() OutputMetadata {
	md := OutputMetadata{}
	if len(ro.Metadata.Filenames) > 0 {
		md.Filenames = make(map[MimeType]string, len(ro.Metadata.Filenames))
		for mime, name := range ro.Metadata.Filenames {
			md.Filenames[MimeType(mime)] = name
		}
	}
	return md
}
