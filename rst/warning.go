package rst

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal condition encountered while rendering.
// Rendering always completes; warnings record what was degraded or omitted
// along the way.
type Warning struct {
	Code    string // stable identifier, e.g. "omitted-output"
	Message string
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Warning codes emitted by the built-in profile.
const (
	WarnUnknownCell     = "unknown-cell"
	WarnUnknownOutput   = "unknown-output"
	WarnOmittedOutput   = "omitted-output"
	WarnMissingFilename = "missing-filename"
	WarnRawSkipped      = "raw-skipped"
	WarnUnknownLanguage = "unknown-language"
)

func (ctx *Context) warnf(code, format string, args ...any) {
	ctx.warnings = append(ctx.warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}
