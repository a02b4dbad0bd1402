package mii

import (
	"errors"

	"github.com/bodgit/mii/cursor"
)

var (
	// ErrUnsupportedFormat is returned for a file whose extension is not one
	// of Extensions.
	ErrUnsupportedFormat = errors.New("mii: unsupported format")
	// ErrInputTooShort is returned if the input cannot hold a complete record.
	ErrInputTooShort = errors.New("mii: input too short")
	// ErrTruncated is returned if decoding runs past the end of the input.
	ErrTruncated = cursor.ErrTruncated
	// ErrMisaligned is returned if a byte-aligned field is not on a byte
	// boundary. It cannot happen with the published layout.
	ErrMisaligned = cursor.ErrMisaligned
)

// IOError records a failed file system operation and its cause.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "mii: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
