package mii

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"go4.org/readerutil"
)

var fs = afero.NewOsFs()

// Extension returns the text after the last "." in the base name of name, or
// an empty string if there is no ".".
func Extension(name string) string {
	name = filepath.Base(name)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

func supportedExtension(ext string) bool {
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Supported reports whether the extension of name is one of Extensions.
func Supported(name string) bool {
	return supportedExtension(Extension(name))
}

// Select returns the bytes of r that hold the Mii record, given the
// extension of the file r was opened from. Ghost files yield the record
// embedded at GhostOffset, every other format yields all of r.
func Select(r readerutil.SizeReaderAt, ext string) ([]byte, error) {
	var sr *io.SectionReader

	switch {
	case ext == GhostExtension:
		if r.Size() < GhostEnd {
			return nil, ErrInputTooShort
		}
		sr = io.NewSectionReader(r, GhostOffset, Size)
	case supportedExtension(ext):
		if r.Size() < Size {
			return nil, ErrInputTooShort
		}
		sr = io.NewSectionReader(r, 0, r.Size())
	default:
		return nil, ErrUnsupportedFormat
	}

	b := make([]byte, sr.Size())
	if _, err := io.ReadFull(sr, b); err != nil {
		return nil, err
	}

	return b, nil
}

// ReadFile returns the Mii record bytes held in the file name. The file is
// closed before ReadFile returns.
func ReadFile(name string) (b []byte, err error) {
	ext := Extension(name)
	if !supportedExtension(ext) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	f, err := fs.Open(name)
	if err != nil {
		return nil, &IOError{Op: "open", Path: name, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			b = nil
			err = multierror.Append(err, &IOError{Op: "close", Path: name, Err: cerr})
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, &IOError{Op: "stat", Path: name, Err: err}
	}

	if b, err = Select(io.NewSectionReader(f, 0, info.Size()), ext); err != nil {
		if errors.Is(err, ErrInputTooShort) {
			return nil, fmt.Errorf("%w: %s is %d bytes", err, name, info.Size())
		}
		return nil, &IOError{Op: "read", Path: name, Err: err}
	}

	return b, nil
}

// Open reads and decodes the Mii record held in the file name.
func Open(name string) (*Mii, error) {
	b, err := ReadFile(name)
	if err != nil {
		return nil, err
	}

	m, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return m, nil
}
