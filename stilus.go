// Package stilus provides a fluent API for converting Jupyter notebooks
// to reStructuredText.
//
// Basic usage:
//
//	text, warnings, err := stilus.Open("analysis.ipynb").RST()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", stilus.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := stilus.Open("analysis.ipynb").
//	    AllowRawFormats("text/restructuredtext", "text/html").
//	    ResourceKey("figure").
//	    RST()
//
// For advanced use cases the lower-level notebook and rst packages are
// also available.
package stilus

import (
	"github.com/tsawler/stilus/notebook"
	"github.com/tsawler/stilus/rst"
)

// Warning describes a non-fatal condition encountered during conversion.
type Warning = rst.Warning

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	return rst.FormatWarnings(warnings)
}

// Open opens a notebook file and returns a Converter for fluent
// configuration.
//
// Example:
//
//	text, warnings, err := stilus.Open("analysis.ipynb").RST()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromNotebook creates a Converter from an already-loaded notebook,
// bypassing the file loader.
//
// Example:
//
//	nb, err := notebook.Open("analysis.ipynb")
//	if err != nil {
//	    // handle error
//	}
//	text, warnings, err := stilus.FromNotebook(nb).RST()
func FromNotebook(nb *notebook.Notebook) *Converter {
	return &Converter{
		nb:      nb,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	nb := stilus.Must(stilus.Open("analysis.ipynb").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to RST() and panics if the error
// is non-nil. It discards warnings and returns just the value. It is
// intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	text := stilus.MustText(stilus.Open("analysis.ipynb").RST())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
