// Package resources materializes notebook output payloads as files.
//
// The rendering engine references binary representations (images) by file
// name but never touches the filesystem. This package is the collaborator
// that closes the loop: [Extract] walks a notebook's outputs, decodes the
// base64 payloads, assigns each one a deterministic file name, records
// that name into the output's metadata for the renderer to find, and
// collects the bytes into a [Set] the caller can write to disk.
package resources
