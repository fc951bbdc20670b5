package resources

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for payload sniffing. The x/image formats show up
	// in notebooks produced by plotting backends that emit raw rasters.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/stilus/notebook"
)

// File is one materialized resource: a name the rendered text references
// and the bytes that must exist at that name.
type File struct {
	Name string
	Data []byte
}

// Set is an ordered collection of materialized resources.
type Set struct {
	files []File
	index map[string]int
}

// NewSet creates an empty resource set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add appends a file to the set, replacing any previous file of the same
// name.
func (s *Set) Add(name string, data []byte) {
	if i, ok := s.index[name]; ok {
		s.files[i].Data = data
		return
	}
	s.index[name] = len(s.files)
	s.files = append(s.files, File{Name: name, Data: data})
}

// Files returns the files in insertion order.
func (s *Set) Files() []File {
	return s.files
}

// Len returns the number of files in the set.
func (s *Set) Len() int {
	return len(s.files)
}

// Get returns the data for name, and whether it is present.
func (s *Set) Get(name string) ([]byte, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.files[i].Data, true
}

// WriteFiles writes every file in the set under dir, creating the
// directory as needed. Names containing path separators are written to
// matching subdirectories.
func (s *Set) WriteFiles(dir string) error {
	for _, f := range s.files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating resource directory: %w", err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return fmt.Errorf("writing resource %s: %w", f.Name, err)
		}
	}
	return nil
}

// extractable representations: binary rasters plus SVG text.
var extractable = []notebook.MimeType{
	notebook.MIMEPNG,
	notebook.MIMEJPEG,
	notebook.MIMESVG,
}

// Extract walks the notebook's outputs in document order and materializes
// every image representation: the payload is decoded, named
// "<key>_<cell>_<output><ext>", and the name recorded into the output's
// Metadata.Filenames for the renderer to reference. Outputs whose payloads
// cannot be decoded are skipped. The key defaults to "output" when empty.
func Extract(nb *notebook.Notebook, key string) *Set {
	if key == "" {
		key = "output"
	}
	set := NewSet()

	for cellIdx, cell := range nb.Cells {
		code, ok := cell.(*notebook.CodeCell)
		if !ok {
			continue
		}
		for outIdx, out := range code.Outputs {
			data, md := outputData(out)
			if data == nil {
				continue
			}
			for _, mime := range extractable {
				content, ok := data[mime]
				if !ok {
					continue
				}
				payload, ext := decodePayload(mime, content)
				if payload == nil {
					continue
				}
				name := fmt.Sprintf("%s_%d_%d%s", key, cellIdx, outIdx, ext)
				set.Add(name, payload)
				if md.Filenames == nil {
					md.Filenames = make(map[notebook.MimeType]string)
				}
				md.Filenames[mime] = name
			}
		}
	}
	return set
}

// outputData exposes the mime bundle and metadata of representation
// carrying outputs; other kinds have nothing to materialize.
func outputData(out notebook.Output) (notebook.MimeBundle, *notebook.OutputMetadata) {
	switch o := out.(type) {
	case *notebook.ExecuteResult:
		return o.Data, &o.Metadata
	case *notebook.DisplayData:
		return o.Data, &o.Metadata
	default:
		return nil, nil
	}
}

// decodePayload turns the interchange representation of one payload into
// bytes plus a file extension. Raster payloads are base64; the extension
// comes from sniffing the decoded bytes, falling back to the mime subtype.
// SVG is stored as plain text.
func decodePayload(mime notebook.MimeType, content string) ([]byte, string) {
	if mime == notebook.MIMESVG {
		return []byte(content), ".svg"
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
	if err != nil {
		return nil, ""
	}

	if _, sniffed, err := image.DecodeConfig(bytes.NewReader(payload)); err == nil {
		return payload, "." + normalizeExt(sniffed)
	}
	return payload, "." + normalizeExt(subtype(mime))
}

func subtype(mime notebook.MimeType) string {
	s := string(mime)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func normalizeExt(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
