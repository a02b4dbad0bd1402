/*
Package render formats a decoded Mii record for display, one field per line in
the order the fields appear in the record.
*/
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bodgit/mii"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects an output representation.
type Format int

const (
	// FormatText writes "Label: value" lines.
	FormatText Format = iota
	// FormatTable writes a two column table.
	FormatTable
	// FormatJSON writes an indented JSON object.
	FormatJSON
)

var formatNames = map[Format]string{
	FormatText:  "text",
	FormatTable: "table",
	FormatJSON:  "json",
}

// ErrUnknownFormat is returned by ParseFormat for an unrecognised name.
var ErrUnknownFormat = errors.New("render: unknown format")

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat returns the Format called s.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Field is a single labelled value.
type Field struct {
	Label string
	Value string
	// Question is set for boolean fields, which are labelled as questions.
	Question bool
}

func (f Field) String() string {
	if f.Question {
		return f.Label + "? " + f.Value
	}
	return f.Label + ": " + f.Value
}

func flag(label string, v bool) Field {
	return Field{Label: label, Value: strconv.FormatBool(v), Question: true}
}

func number(label string, v uint8) Field {
	return Field{Label: label, Value: strconv.Itoa(int(v))}
}

func name(label string, n mii.Name) Field {
	return Field{Label: label, Value: `"` + n.String() + `"`}
}

// Fields returns every field of m in record order. The birthday month and
// day are combined into a single MM/DD field.
func Fields(m *mii.Mii) []Field {
	return []Field{
		flag("Is Female", m.IsFemale),
		{Label: "Birthday", Value: m.Birthday()},
		number("Favorite Color", m.FavoriteColor),
		flag("Is Favorite", m.IsFavorite),
		name("Mii Name", m.MiiName),
		number("Height", m.Height),
		number("Weight", m.Weight),
		{Label: "Mii ID", Value: m.MiiID.String()},
		{Label: "Console ID", Value: m.ConsoleID.String()},
		number("Face Shape", m.FaceShape),
		number("Skin Tone", m.SkinTone),
		number("Face Features", m.FaceFeatures),
		flag("Can Mingle", m.CanMingle),
		number("Source Type", m.SourceType),
		number("Hair Type", m.HairType),
		number("Hair Color", m.HairColor),
		flag("Hair Flipped", m.HairFlipped),
		number("Eyebrow Type", m.EyebrowType),
		number("Eyebrow Rotation", m.EyebrowRotation),
		number("Eyebrow Color", m.EyebrowColor),
		number("Eyebrow Size", m.EyebrowSize),
		number("Eyebrow Vertical", m.EyebrowVertical),
		number("Eyebrow Horizontal", m.EyebrowHorizontal),
		number("Eye Type", m.EyeType),
		number("Eye Rotation", m.EyeRotation),
		number("Eye Vertical", m.EyeVertical),
		number("Eye Color", m.EyeColor),
		number("Eye Size", m.EyeSize),
		number("Eye Horizontal", m.EyeHorizontal),
		number("Nose Type", m.NoseType),
		number("Nose Size", m.NoseSize),
		number("Nose Vertical", m.NoseVertical),
		number("Mouth Type", m.MouthType),
		number("Mouth Color", m.MouthColor),
		number("Mouth Size", m.MouthSize),
		number("Mouth Vertical", m.MouthVertical),
		number("Glasses Type", m.GlassesType),
		number("Glasses Color", m.GlassesColor),
		number("Glasses Size", m.GlassesSize),
		number("Glasses Vertical", m.GlassesVertical),
		number("Facial Hair Mustache", m.FacialHairMustache),
		number("Facial Hair Beard", m.FacialHairBeard),
		number("Facial Hair Color", m.FacialHairColor),
		number("Facial Hair Size", m.FacialHairSize),
		number("Facial Hair Vertical", m.FacialHairVertical),
		flag("Mole Enabled", m.MoleEnabled),
		number("Mole Size", m.MoleSize),
		number("Mole Vertical", m.MoleVertical),
		number("Mole Horizontal", m.MoleHorizontal),
		name("Creator Name", m.CreatorName),
	}
}

// Text writes one "Label: value" line per field.
func Text(w io.Writer, m *mii.Mii) error {
	for _, f := range Fields(m) {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

// Table writes the fields as a table.
func Table(w io.Writer, m *mii.Mii) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, f := range Fields(m) {
		tw.AppendRow(table.Row{f.Label, f.Value})
	}
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// JSON writes m as an indented JSON object.
func JSON(w io.Writer, m *mii.Mii) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// Write renders m to w in format f.
func Write(w io.Writer, f Format, m *mii.Mii) error {
	switch f {
	case FormatText:
		return Text(w, m)
	case FormatTable:
		return Table(w, m)
	case FormatJSON:
		return JSON(w, m)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
