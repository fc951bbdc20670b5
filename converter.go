package stilus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/stilus/format"
	"github.com/tsawler/stilus/notebook"
	"github.com/tsawler/stilus/resources"
	"github.com/tsawler/stilus/rst"
)

// Converter provides a fluent interface for converting notebooks. Each
// configuration method returns a new Converter instance, so configured
// chains can be shared and extended freely. Terminal methods lazily load
// the notebook and cache it on the receiver; call them from one goroutine,
// or convert per-goroutine copies derived from the same chain.
type Converter struct {
	// Source
	filename string
	nb       *notebook.Notebook
	loaded   bool

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// Result holds everything one conversion produces: the rendered text, the
// resources it references, and the warnings raised along the way.
type Result struct {
	Text      string
	Resources *resources.Set
	Warnings  []Warning
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		nb:       c.nb,
		loaded:   c.loaded,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// AllowRawFormats sets the raw cell format tags that pass through
// verbatim. Matching is case-insensitive; untagged raw cells never match.
func (c *Converter) AllowRawFormats(formats ...string) *Converter {
	newConv := c.clone()
	newConv.options.rawFormats = append([]string(nil), formats...)
	return newConv
}

// WithPriority overrides the representation preference order used to pick
// one rendering per output.
func (c *Converter) WithPriority(priority ...notebook.MimeType) *Converter {
	newConv := c.clone()
	newConv.options.priority = append([]notebook.MimeType(nil), priority...)
	return newConv
}

// WithProfile replaces the rendering profile wholesale. Later
// AllowRawFormats/WithPriority calls still override the corresponding
// profile fields.
func (c *Converter) WithProfile(p rst.Profile) *Converter {
	newConv := c.clone()
	newConv.options.profile = p
	newConv.options.hasProfile = true
	return newConv
}

// ResourceKey sets the name stem used for materialized resources
// (default "output").
func (c *Converter) ResourceKey(key string) *Converter {
	newConv := c.clone()
	if key == "" {
		key = "output"
	}
	newConv.options.resourceKey = key
	return newConv
}

// ensureNotebook loads the notebook if not already loaded.
func (c *Converter) ensureNotebook() error {
	if c.loaded {
		if c.nb == nil {
			return fmt.Errorf("nil notebook")
		}
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	if format.Detect(c.filename) == format.Unknown {
		// Extension is advisory; fall through and let the reader decide.
		data, err := os.ReadFile(c.filename)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		if format.DetectFromMagic(data) == format.Unknown {
			return fmt.Errorf("unsupported file format: %s", c.filename)
		}
		nb, err := notebook.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to open notebook: %w", err)
		}
		c.nb = nb
		c.loaded = true
		return nil
	}

	nb, err := notebook.Open(c.filename)
	if err != nil {
		return fmt.Errorf("failed to open notebook: %w", err)
	}
	c.nb = nb
	c.loaded = true
	return nil
}

// Document loads and returns the notebook IR without rendering it.
func (c *Converter) Document() (*notebook.Notebook, error) {
	if c.err != nil {
		return nil, c.err
	}
	if err := c.ensureNotebook(); err != nil {
		return nil, err
	}
	return c.nb, nil
}

// Convert performs the full conversion: extract resources, render, and
// return text, resources, and warnings together.
func (c *Converter) Convert() (*Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	if err := c.ensureNotebook(); err != nil {
		return nil, err
	}

	set := resources.Extract(c.nb, c.options.resourceKey)
	renderer := rst.New(c.options.effectiveProfile())
	text, refs, warnings := renderer.Render(c.nb)

	return &Result{
		Text:      text,
		Resources: referenced(set, refs),
		Warnings:  warnings,
	}, nil
}

// RST converts the notebook and returns the reStructuredText, warnings,
// and an error if loading failed. Warnings indicate non-fatal issues
// (e.g. an output with no renderable representation) where conversion
// succeeded but the result may be incomplete.
//
// Example:
//
//	text, warnings, err := stilus.Open("analysis.ipynb").RST()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", stilus.FormatWarnings(warnings))
//	}
func (c *Converter) RST() (string, []Warning, error) {
	res, err := c.Convert()
	if err != nil {
		return "", nil, err
	}
	return res.Text, res.Warnings, nil
}

// WriteFile converts the notebook and writes the text to path, placing
// any referenced resources in the same directory.
func (c *Converter) WriteFile(path string) ([]Warning, error) {
	res, err := c.Convert()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(res.Text), 0o644); err != nil {
		return res.Warnings, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := res.Resources.WriteFiles(filepath.Dir(path)); err != nil {
		return res.Warnings, err
	}
	return res.Warnings, nil
}

// referenced narrows a resource set to the names the rendered text
// actually references; unreferenced extractions are dropped so WriteFile
// creates no orphans.
func referenced(set *resources.Set, refs []string) *resources.Set {
	out := resources.NewSet()
	for _, name := range refs {
		// The renderer records names exactly as the materializer assigned
		// them (encoding happens at emission), so a direct lookup suffices.
		if data, ok := set.Get(name); ok {
			out.Add(name, data)
		}
	}
	return out
}
