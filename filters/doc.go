// Package filters provides pure text transforms used while emitting markup.
//
// Every function is stateless and side-effect free: it maps an input string
// to an output string and never fails. Rendering profiles apply these during
// emission (indentation of literal blocks, ANSI stripping of tracebacks,
// percent-encoding of referenced file names), but nothing in this package
// depends on the rendering engine.
package filters
