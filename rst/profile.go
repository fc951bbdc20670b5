package rst

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/tsawler/stilus/internal/mdrst"
	"github.com/tsawler/stilus/notebook"
)

// DefaultLanguage is assumed for code cells when the notebook metadata
// names no language at all.
const DefaultLanguage = "python"

// Profile bundles the block overrides and configuration that define one
// target output dialect.
type Profile struct {
	// Blocks is the effective block set. Nil selects the built-in RST
	// blocks.
	Blocks Blocks

	// Priority is the representation preference order. Nil selects
	// DefaultPriority.
	Priority []notebook.MimeType

	// RawFormats is the set of raw cell format tags emitted verbatim.
	// Membership is case-insensitive. Nil selects the RST default
	// ("text/restructuredtext"); an untagged raw cell never matches.
	RawFormats []string

	// MarkdownConvert transforms markdown into the destination dialect.
	// Nil selects the built-in converter. The engine only decides where
	// the converter is invoked, never how it works.
	MarkdownConvert func(string) string

	// DefaultLanguage overrides the fallback language tag for code cells.
	DefaultLanguage string
}

// DefaultProfile returns the reStructuredText profile.
func DefaultProfile() Profile {
	return Profile{
		Blocks:          NewBlocks(),
		Priority:        DefaultPriority(),
		RawFormats:      []string{"text/restructuredtext"},
		MarkdownConvert: mdrst.Convert,
		DefaultLanguage: DefaultLanguage,
	}
}

// normalized fills in the zero-value fields with the RST defaults.
func (p Profile) normalized() Profile {
	if p.Blocks == nil {
		p.Blocks = NewBlocks()
	}
	if p.Priority == nil {
		p.Priority = DefaultPriority()
	}
	if p.RawFormats == nil {
		p.RawFormats = []string{"text/restructuredtext"}
	}
	if p.MarkdownConvert == nil {
		p.MarkdownConvert = mdrst.Convert
	}
	if p.DefaultLanguage == "" {
		p.DefaultLanguage = DefaultLanguage
	}
	return p
}

// resolveLanguage picks the language tag for code cell directives:
// the notebook's pygments lexer, then its language name, then the
// kernelspec language, then the profile fallback. The tag is lowercased
// (highlighter aliases are lowercase) and checked against the chroma
// registry, which mirrors the pygments names code directives expect;
// known is false for tags no highlighter will recognize.
func (p Profile) resolveLanguage(nb *notebook.Notebook) (lang string, known bool) {
	lang = nb.Language()
	if lang == "" {
		lang = p.DefaultLanguage
	}
	lang = strings.ToLower(lang)
	return lang, lexers.Get(lang) != nil
}
