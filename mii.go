/*
Package mii decodes the 74-byte Mii record used by the Nintendo Wii, either
from a raw Mii file or from a Mario Kart Wii ghost file that embeds one.

References:
https://wiibrew.org/wiki/Mii_Data
*/
package mii

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// Size is the length of a serialized Mii record.
	Size = 0x4A
	// NameSize is the number of bytes reserved for each name field.
	NameSize = 20
	// GhostOffset is where the Mii record starts within a ghost file.
	GhostOffset = 0x3C
	// GhostEnd is the minimum length of a ghost file.
	GhostEnd = GhostOffset + Size
	// GhostExtension is the extension used by Mario Kart Wii ghost files.
	GhostExtension = "rkg"
)

// Extensions lists every accepted file extension.
var Extensions = []string{"miigx", "mii", "mae", "rsd", "rcd", GhostExtension}

// Name holds the UTF-16 code units of a name field. Ill-formed sequences such
// as unpaired surrogates are kept as-is.
type Name []uint16

// Len returns the number of code units.
func (n Name) Len() int {
	return len(n)
}

// String renders the name, substituting U+FFFD for any ill-formed sequence.
func (n Name) String() string {
	b := make([]byte, len(n)<<1)
	for i, u := range n {
		binary.BigEndian.PutUint16(b[i<<1:], u)
	}
	s, _, err := transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), b)
	if err != nil {
		return string(utf16.Decode(n))
	}
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// ID is a big-endian 32-bit identifier.
type ID [4]byte

// String returns the ID as eight uppercase hexadecimal digits.
func (id ID) String() string {
	return fmt.Sprintf("%X", id[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Mii is a decoded Mii record. Values are stored exactly as found; no range
// checking is performed.
type Mii struct {
	IsFemale      bool  `json:"is_female"`
	BirthdayMonth uint8 `json:"birthday_month"`
	BirthdayDay   uint8 `json:"birthday_day"`
	FavoriteColor uint8 `json:"favorite_color"`
	IsFavorite    bool  `json:"is_favorite"`
	MiiName       Name  `json:"mii_name"`
	Height        uint8 `json:"height"`
	Weight        uint8 `json:"weight"`
	MiiID         ID    `json:"mii_id"`
	ConsoleID     ID    `json:"console_id"`

	FaceShape    uint8 `json:"face_shape"`
	SkinTone     uint8 `json:"skin_tone"`
	FaceFeatures uint8 `json:"face_features"`
	CanMingle    bool  `json:"can_mingle"`
	SourceType   uint8 `json:"source_type"`

	HairType    uint8 `json:"hair_type"`
	HairColor   uint8 `json:"hair_color"`
	HairFlipped bool  `json:"hair_flipped"`

	EyebrowType       uint8 `json:"eyebrow_type"`
	EyebrowRotation   uint8 `json:"eyebrow_rotation"`
	EyebrowColor      uint8 `json:"eyebrow_color"`
	EyebrowSize       uint8 `json:"eyebrow_size"`
	EyebrowVertical   uint8 `json:"eyebrow_vertical"`
	EyebrowHorizontal uint8 `json:"eyebrow_horizontal"`

	EyeType       uint8 `json:"eye_type"`
	EyeRotation   uint8 `json:"eye_rotation"`
	EyeVertical   uint8 `json:"eye_vertical"`
	EyeColor      uint8 `json:"eye_color"`
	EyeSize       uint8 `json:"eye_size"`
	EyeHorizontal uint8 `json:"eye_horizontal"`

	NoseType     uint8 `json:"nose_type"`
	NoseSize     uint8 `json:"nose_size"`
	NoseVertical uint8 `json:"nose_vertical"`

	MouthType     uint8 `json:"mouth_type"`
	MouthColor    uint8 `json:"mouth_color"`
	MouthSize     uint8 `json:"mouth_size"`
	MouthVertical uint8 `json:"mouth_vertical"`

	GlassesType     uint8 `json:"glasses_type"`
	GlassesColor    uint8 `json:"glasses_color"`
	GlassesSize     uint8 `json:"glasses_size"`
	GlassesVertical uint8 `json:"glasses_vertical"`

	FacialHairMustache uint8 `json:"facial_hair_mustache"`
	FacialHairBeard    uint8 `json:"facial_hair_beard"`
	FacialHairColor    uint8 `json:"facial_hair_color"`
	FacialHairSize     uint8 `json:"facial_hair_size"`
	FacialHairVertical uint8 `json:"facial_hair_vertical"`

	MoleEnabled    bool  `json:"mole_enabled"`
	MoleSize       uint8 `json:"mole_size"`
	MoleVertical   uint8 `json:"mole_vertical"`
	MoleHorizontal uint8 `json:"mole_horizontal"`

	CreatorName Name `json:"creator_name"`
}

// Birthday returns the birthday as MM/DD.
func (m *Mii) Birthday() string {
	return fmt.Sprintf("%02d/%02d", m.BirthdayMonth, m.BirthdayDay)
}
