// Package format provides source file format detection for the stilus library.
package format

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Format represents a supported source document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Notebook indicates a Jupyter notebook (.ipynb) document.
	Notebook
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Notebook:
		return "Notebook"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Notebook:
		return ".ipynb"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ipynb":
		return Notebook
	default:
		return Unknown
	}
}

// DetectFromMagic inspects content to determine format. A notebook is a
// JSON object carrying an "nbformat" field; this is more reliable than
// extension-based detection for renamed or piped files.
func DetectFromMagic(data []byte) Format {
	// Skip UTF-8 BOM and leading whitespace
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) || data[start] != '{' {
		return Unknown
	}

	var probe struct {
		NBFormat *int `json:"nbformat"`
	}
	if err := json.Unmarshal(data[start:], &probe); err != nil {
		return Unknown
	}
	if probe.NBFormat == nil {
		return Unknown
	}
	return Notebook
}

// DetectVersion reports the interchange format version declared by a
// notebook document. Returns (0, 0, false) when the content is not a
// notebook.
func DetectVersion(data []byte) (major, minor int, ok bool) {
	var probe struct {
		NBFormat      *int `json:"nbformat"`
		NBFormatMinor int  `json:"nbformat_minor"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, 0, false
	}
	if probe.NBFormat == nil {
		return 0, 0, false
	}
	return *probe.NBFormat, probe.NBFormatMinor, true
}
