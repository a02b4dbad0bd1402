package picker

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/bodgit/mii"
	"github.com/spf13/afero"
)

func TestScan(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"b.rkg", "a.mii", "c.txt", "d.miigx.bak", "e.rcd", "rkg"} {
		if err := afero.WriteFile(fs, "/miis/"+name, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := fs.MkdirAll("/miis/folder.mii", 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Scan(fs, "/miis")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.mii", "b.rkg", "e.rcd"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err = Scan(fs, "/missing")
	var ioErr *mii.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("error = %v, want *mii.IOError", err)
	}
}

func TestParse(t *testing.T) {
	tables := []struct {
		in   string
		want int
		err  error
	}{
		{"1\n", 0, nil},
		{" 12 \r\n", 11, nil},
		{"0", 0, errTooLow},
		{"-3", 0, errTooLow},
		{"13", 0, errTooHigh},
		{"one", 0, ErrInvalidSelection},
		{"", 0, ErrInvalidSelection},
	}

	for _, table := range tables {
		got, err := Parse(table.in, 12)
		if !errors.Is(err, table.err) {
			t.Errorf("Parse(%q) error = %v, want %v", table.in, err, table.err)
		}
		if err != nil && !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Parse(%q) error %v is not ErrInvalidSelection", table.in, err)
		}
		if got != table.want {
			t.Errorf("Parse(%q) = %d, want %d", table.in, got, table.want)
		}
	}
}

func TestMenu(t *testing.T) {
	var out bytes.Buffer
	files := make([]string, 10)
	for i := range files {
		files[i] = string(rune('a'+i)) + ".mii"
	}

	New(strings.NewReader(""), &out).Menu(files)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[1] != "01. a.mii" || lines[10] != "10. j.mii" {
		t.Errorf("menu = %q", lines)
	}
}

func TestChoose(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("zero\n0\n4\n2\n"), &out)

	i, err := p.Choose(3)
	if err != nil {
		t.Fatal(err)
	}
	if i != 1 {
		t.Errorf("index = %d, want 1", i)
	}

	s := out.String()
	for _, want := range []string{"Error reading the number, try again.", "Number too low!", "Number too high!"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(s, "Pick a number >> "); n != 4 {
		t.Errorf("prompted %d times, want 4", n)
	}
}

func TestChooseEOF(t *testing.T) {
	tables := []struct {
		in   string
		want int
		err  error
	}{
		{"", 0, io.EOF},
		{"9", 0, io.EOF},
		{"x\n", 0, io.EOF},
		{"3", 2, nil},
	}

	for _, table := range tables {
		i, err := New(strings.NewReader(table.in), io.Discard).Choose(3)
		if err != table.err || i != table.want {
			t.Errorf("%q: got %d, %v", table.in, i, err)
		}
	}
}

func TestBanner(t *testing.T) {
	var out bytes.Buffer
	Banner(&out)
	if !strings.Contains(out.String(), "1. miigx, mii, mae, rsd, rcd") || !strings.Contains(out.String(), "2. rkg (MKW Ghost Data)") {
		t.Errorf("banner = %q", out.String())
	}
}
