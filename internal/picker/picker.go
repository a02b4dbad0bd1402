// Package picker finds Mii files in a directory and asks the user to choose
// one of them.
package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bodgit/mii"
	"github.com/spf13/afero"
)

// ErrInvalidSelection is returned by Parse for input that does not name one
// of the listed files.
var ErrInvalidSelection = errors.New("picker: invalid selection")

var (
	errTooLow  = fmt.Errorf("%w: number too low", ErrInvalidSelection)
	errTooHigh = fmt.Errorf("%w: number too high", ErrInvalidSelection)
)

// Scan returns the names of the regular files in dir with an accepted
// extension, sorted by name.
func Scan(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, &mii.IOError{Op: "readdir", Path: dir, Err: err}
	}

	var files []string
	for _, info := range infos {
		if info.IsDir() || !mii.Supported(info.Name()) {
			continue
		}
		files = append(files, info.Name())
	}

	return files, nil
}

// Banner writes the tool banner and the list of accepted formats.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "---------------------------")
	fmt.Fprintln(w, "|  Wii Mii Data Analyzer  |")
	fmt.Fprintln(w, "---------------------------")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "----------- Accepted formats:")
	var raw []string
	for _, ext := range mii.Extensions {
		if ext != mii.GhostExtension {
			raw = append(raw, ext)
		}
	}
	fmt.Fprintf(w, "1. %s\n", strings.Join(raw, ", "))
	fmt.Fprintf(w, "2. %s (MKW Ghost Data)\n", mii.GhostExtension)
	fmt.Fprintln(w)
}

// Parse converts a 1-based selection into a 0-based index into a list of n
// files.
func Parse(s string, n int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	switch {
	case v < 1:
		return 0, errTooLow
	case v > n:
		return 0, errTooHigh
	}
	return v - 1, nil
}

// Picker presents a numbered menu and reads a selection.
type Picker struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Picker reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Picker {
	return &Picker{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Menu lists files numbered from 1, padding the numbers to the same width.
func (p *Picker) Menu(files []string) {
	width := len(strconv.Itoa(len(files)))
	fmt.Fprintln(p.out, "----------- Matching files in current folder:")
	for i, file := range files {
		fmt.Fprintf(p.out, "%0*d. %s\n", width, i+1, file)
	}
}

// Choose prompts until a number between 1 and n is entered and returns it as
// a 0-based index. Invalid input is reported and the prompt repeated; the
// input ending is an error.
func (p *Picker) Choose(n int) (int, error) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprint(p.out, "Pick a number >> ")

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			fmt.Fprintln(p.out)
			return 0, err
		}

		i, perr := Parse(line, n)
		if perr == nil {
			fmt.Fprintln(p.out)
			return i, nil
		}

		fmt.Fprintln(p.out)
		switch {
		case errors.Is(perr, errTooLow):
			fmt.Fprintln(p.out, "Number too low!")
		case errors.Is(perr, errTooHigh):
			fmt.Fprintln(p.out, "Number too high!")
		default:
			fmt.Fprintln(p.out, "Error reading the number, try again.")
			fmt.Fprintf(p.out, ">>> %v\n", perr)
		}
		if err == io.EOF {
			return 0, err
		}
	}
}
