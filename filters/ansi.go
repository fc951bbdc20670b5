package filters

import (
	"strings"

	"github.com/pgavlin/ansicsi"
)

// StripAnsi removes ANSI terminal escape sequences from text. Kernel
// tracebacks arrive colorized; markup sinks want the plain text. The
// function is idempotent: clean input passes through unchanged.
func StripAnsi(text string) string {
	if !strings.ContainsRune(text, 0x1b) {
		return text
	}

	buf := []byte(text)
	var b strings.Builder
	b.Grow(len(buf))
	for i := 0; i < len(buf); {
		if buf[i] == 0x1b {
			if _, size := ansicsi.Decode(buf[i:]); size > 0 {
				i += size
				continue
			}
		}
		b.WriteByte(buf[i])
		i++
	}
	return b.String()
}
