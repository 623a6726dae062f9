// Package vferr holds the sentinel errors shared by vfontas's format
// loaders, checked with errors.Is per the invalid-format/truncated/
// semantic-precondition taxonomy.
package vferr

import "errors"

var (
	// ErrBadMagic means a file's header does not begin with the expected
	// magic bytes for the format being loaded.
	ErrBadMagic = errors.New("bad magic number")
	// ErrTruncated means a file ended before a loader finished reading a
	// structure its header promised was present.
	ErrTruncated = errors.New("truncated file")
	// ErrUnsupported means a file is well-formed but declares a variant
	// (e.g. an unknown glyph size) this loader does not implement.
	ErrUnsupported = errors.New("unsupported variant")
)
