package notebook

// MimeType identifies one representation kind within a MimeBundle.
type MimeType string

// Representation kinds that the built-in profiles know how to render.
const (
	MIMEText       MimeType = "text/plain"
	MIMEHTML       MimeType = "text/html"
	MIMEMarkdown   MimeType = "text/markdown"
	MIMELatex      MimeType = "text/latex"
	MIMESVG        MimeType = "image/svg+xml"
	MIMEPNG        MimeType = "image/png"
	MIMEJPEG       MimeType = "image/jpeg"
	MIMEJavaScript MimeType = "application/javascript"
)

// MimeBundle maps representation kinds to raw content. Binary payloads
// (PNG, JPEG) are stored as their base64 text exactly as they appear in
// the interchange format.
type MimeBundle map[MimeType]string

// Has reports whether the bundle carries the given representation.
func (b MimeBundle) Has(m MimeType) bool {
	_, ok := b[m]
	return ok
}

// OutputMetadata carries per-output metadata. Filenames holds resolved file
// names for representations that were materialized to disk; the renderer
// reads them but never writes them.
type OutputMetadata struct {
	Filenames map[MimeType]string
	Custom    map[string]any
}

// OutputType represents the kind of code cell output.
type OutputType int

const (
	OutputTypeUnknown OutputType = iota
	OutputTypeExecuteResult
	OutputTypeDisplayData
	OutputTypeStream
	OutputTypeError
)

func (ot OutputType) String() string {
	switch ot {
	case OutputTypeExecuteResult:
		return "execute_result"
	case OutputTypeDisplayData:
		return "display_data"
	case OutputTypeStream:
		return "stream"
	case OutputTypeError:
		return "error"
	default:
		return "unknown"
	}
}

// Output is the interface for all code cell outputs.
type Output interface {
	Type() OutputType
}

// ExecuteResult is the value of the last expression of an executed cell,
// offered in one or more alternative representations.
type ExecuteResult struct {
	Data           MimeBundle
	Metadata       OutputMetadata
	ExecutionCount int
}

func (o *ExecuteResult) Type() OutputType { return OutputTypeExecuteResult }

// DisplayData is an explicitly displayed value, offered in one or more
// alternative representations.
type DisplayData struct {
	Data     MimeBundle
	Metadata OutputMetadata
}

func (o *DisplayData) Type() OutputType { return OutputTypeDisplayData }

// Stream is text written to stdout or stderr during execution.
type Stream struct {
	Name string // "stdout" or "stderr"
	Text string
}

func (o *Stream) Type() OutputType { return OutputTypeStream }

// ErrorOutput is an exception raised during execution, with its traceback
// lines in original order. The lines may contain ANSI color sequences.
type ErrorOutput struct {
	Name      string // exception class name
	Value     string // exception message
	Traceback []string
}

func (o *ErrorOutput) Type() OutputType { return OutputTypeError }

// UnknownOutput preserves an output whose kind the reader did not recognize.
type UnknownOutput struct {
	OutputKind string // the raw output_type value
}

func (o *UnknownOutput) Type() OutputType { return OutputTypeUnknown }
