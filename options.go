package stilus

import (
	"github.com/tsawler/stilus/notebook"
	"github.com/tsawler/stilus/rst"
)

// ConvertOptions holds configuration for notebook conversion.
type ConvertOptions struct {
	// Rendering profile (blocks, priority list, markdown converter)
	profile    rst.Profile
	hasProfile bool

	// Raw cell format tags emitted verbatim (case-insensitive)
	rawFormats []string

	// Representation preference order override
	priority []notebook.MimeType

	// Name stem for materialized resources ("output" by default)
	resourceKey string
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		profile:     rst.Profile{},
		rawFormats:  nil, // nil means the profile's default set
		priority:    nil, // nil means the profile's default order
		resourceKey: "output",
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		profile:     o.profile,
		hasProfile:  o.hasProfile,
		resourceKey: o.resourceKey,
	}

	if o.rawFormats != nil {
		newOpts.rawFormats = make([]string, len(o.rawFormats))
		copy(newOpts.rawFormats, o.rawFormats)
	}
	if o.priority != nil {
		newOpts.priority = make([]notebook.MimeType, len(o.priority))
		copy(newOpts.priority, o.priority)
	}

	return newOpts
}

// effectiveProfile folds the option overrides into the profile handed to
// the renderer.
func (o ConvertOptions) effectiveProfile() rst.Profile {
	p := o.profile
	if !o.hasProfile {
		p = rst.DefaultProfile()
	}
	if o.rawFormats != nil {
		p.RawFormats = o.rawFormats
	}
	if o.priority != nil {
		p.Priority = o.priority
	}
	return p
}
