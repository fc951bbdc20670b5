package rst

import "github.com/tsawler/stilus/notebook"

// DefaultPriority returns the representation preference order of the
// reStructuredText profile, most preferred first. The slice is
// configuration: profiles targeting another dialect supply their own.
func DefaultPriority() []notebook.MimeType {
	return []notebook.MimeType{
		notebook.MIMEMarkdown,
		notebook.MIMELatex,
		notebook.MIMESVG,
		notebook.MIMEPNG,
		notebook.MIMEJPEG,
		notebook.MIMEText,
		notebook.MIMEHTML,
	}
}

// ResolveMime picks the representation to render from a bundle: the first
// entry of priority present in the bundle wins. Selection is deterministic
// and order-stable; ok is false when nothing matches, in which case the
// output contributes no text.
func ResolveMime(bundle notebook.MimeBundle, priority []notebook.MimeType) (notebook.MimeType, bool) {
	for _, mime := range priority {
		if bundle.Has(mime) {
			return mime, true
		}
	}
	return "", false
}
