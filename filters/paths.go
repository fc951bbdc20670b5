package filters

import (
	"net/url"
	"strings"
)

// PercentEncode percent-encodes a file name for safe embedding in a markup
// reference. Path separators are preserved; each segment is escaped on its
// own (the original tool calls this path2url).
func PercentEncode(name string) string {
	segments := strings.Split(name, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// PosixPath rewrites OS-native path separators to forward slashes so the
// result is usable inside markup regardless of platform.
func PosixPath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
