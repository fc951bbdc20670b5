// Package mdrst converts markdown text to reStructuredText.
//
// It is the default implementation of the markdown converter hook used by
// the rst rendering profile. The source is parsed with goldmark and the
// resulting AST is walked directly, emitting the closest reStructuredText
// construct for each node. Constructs without an RST equivalent degrade to
// their plain text rather than failing.
package mdrst
