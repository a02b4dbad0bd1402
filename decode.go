package mii

import (
	"github.com/bodgit/mii/cursor"
)

type decoder struct {
	c   *cursor.Cursor
	err error
}

func (d *decoder) bits(n int) uint8 {
	if d.err != nil {
		return 0
	}
	var v uint32
	v, d.err = d.c.ReadBits(n)
	return uint8(v)
}

func (d *decoder) flag() bool {
	return d.bits(1) != 0
}

// Reserved bits
func (d *decoder) skip(n int) {
	if d.err != nil {
		return
	}
	d.err = d.c.Skip(n)
}

func (d *decoder) align() {
	if d.err != nil {
		return
	}
	d.err = d.c.Align()
}

func (d *decoder) id() (id ID) {
	d.align()
	if d.err != nil {
		return
	}
	var b []byte
	if b, d.err = d.c.ReadBytes(len(id)); d.err == nil {
		copy(id[:], b)
	}
	return
}

func (d *decoder) name() Name {
	d.align()
	if d.err != nil {
		return nil
	}
	var u []uint16
	u, d.err = d.c.ReadFixedUTF16BE(NameSize)
	return Name(u)
}

// Decode decodes the Mii record at the start of b.
func Decode(b []byte) (*Mii, error) {
	return Read(cursor.New(b))
}

// Read decodes a Mii record from c, leaving it positioned immediately after
// the record. Any cursor error is returned unchanged.
func Read(c *cursor.Cursor) (*Mii, error) {
	d := &decoder{c: c}
	m := new(Mii)

	// 0x00
	d.skip(1)
	m.IsFemale = d.flag()
	m.BirthdayMonth = d.bits(4)
	m.BirthdayDay = d.bits(5)
	m.FavoriteColor = d.bits(4)
	m.IsFavorite = d.flag()

	// 0x02
	m.MiiName = d.name()

	// 0x16
	d.skip(1)
	m.Height = d.bits(7)
	d.skip(1)
	m.Weight = d.bits(7)

	// 0x18
	m.MiiID = d.id()
	m.ConsoleID = d.id()

	// 0x20
	d.align()
	m.FaceShape = d.bits(3)
	m.SkinTone = d.bits(3)
	m.FaceFeatures = d.bits(4)
	d.skip(3)
	m.CanMingle = d.flag()
	m.SourceType = d.bits(2)

	// 0x22
	m.HairType = d.bits(7)
	m.HairColor = d.bits(3)
	m.HairFlipped = d.flag()
	d.skip(5)

	// 0x24
	m.EyebrowType = d.bits(5)
	d.skip(1)
	m.EyebrowRotation = d.bits(4)
	d.skip(6)
	m.EyebrowColor = d.bits(3)
	m.EyebrowSize = d.bits(4)
	m.EyebrowVertical = d.bits(5)
	m.EyebrowHorizontal = d.bits(4)

	// 0x28
	m.EyeType = d.bits(6)
	d.skip(2)
	m.EyeRotation = d.bits(3)
	d.skip(1)
	m.EyeVertical = d.bits(4)
	m.EyeColor = d.bits(3)
	d.skip(1)
	m.EyeSize = d.bits(3)
	m.EyeHorizontal = d.bits(4)
	d.skip(5)

	// 0x2C
	m.NoseType = d.bits(4)
	m.NoseSize = d.bits(4)
	m.NoseVertical = d.bits(5)
	d.skip(3)

	// 0x2E
	m.MouthType = d.bits(5)
	m.MouthColor = d.bits(2)
	m.MouthSize = d.bits(4)
	m.MouthVertical = d.bits(5)

	// 0x30
	m.GlassesType = d.bits(4)
	m.GlassesColor = d.bits(3)
	m.GlassesSize = d.bits(4)
	m.GlassesVertical = d.bits(5)

	// 0x32
	m.FacialHairMustache = d.bits(2)
	m.FacialHairBeard = d.bits(2)
	m.FacialHairColor = d.bits(3)
	m.FacialHairSize = d.bits(4)
	m.FacialHairVertical = d.bits(5)

	// 0x34
	m.MoleEnabled = d.flag()
	m.MoleSize = d.bits(4)
	m.MoleVertical = d.bits(5)
	m.MoleHorizontal = d.bits(5)
	d.skip(1)

	// 0x36
	m.CreatorName = d.name()

	if d.err != nil {
		return nil, d.err
	}

	return m, nil
}
