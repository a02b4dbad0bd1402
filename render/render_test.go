package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bodgit/mii"
)

func sample(t *testing.T) *mii.Mii {
	t.Helper()
	b := make([]byte, mii.Size)
	b[0], b[1] = 0x4d, 0xc1
	copy(b[0x02:], []byte{0x00, 'A', 0x00, 'B', 0x00, 0x00})
	copy(b[0x18:], []byte{0x80, 0x0a, 0xbc, 0x01, 0x00, 0x00, 0x0f, 0xd2})
	copy(b[0x36:], []byte{0x00, 'Z'})
	m, err := mii.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sample(t)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("got %d lines, want 50", len(lines))
	}

	for i, want := range map[int]string{
		0:  "Is Female? true",
		1:  "Birthday: 03/14",
		2:  "Favorite Color: 0",
		3:  "Is Favorite? true",
		4:  `Mii Name: "AB"`,
		5:  "Height: 0",
		7:  "Mii ID: 800ABC01",
		8:  "Console ID: 00000FD2",
		12: "Can Mingle? false",
		45: "Mole Enabled? false",
		49: `Creator Name: "Z"`,
	} {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, sample(t)); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"Field", "Birthday", "03/14", "800ABC01", `"AB"`} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("table missing %q", s)
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sample(t)); err != nil {
		t.Fatal(err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	for k, want := range map[string]interface{}{
		"is_female":      true,
		"birthday_month": 3.0,
		"birthday_day":   14.0,
		"mii_name":       "AB",
		"mii_id":         "800ABC01",
		"creator_name":   "Z",
	} {
		if got[k] != want {
			t.Errorf("%s = %v, want %v", k, got[k], want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for s, want := range map[string]Format{
		"text":  FormatText,
		"TABLE": FormatTable,
		"json":  FormatJSON,
	} {
		got, err := ParseFormat(s)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", s, got, err)
		}
		if got.String() != strings.ToLower(s) {
			t.Errorf("String() = %q", got.String())
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v", err)
	}
	if err := Write(&bytes.Buffer{}, Format(9), sample(t)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write error = %v", err)
	}
}
