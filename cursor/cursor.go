/*
Package cursor implements a bit-level reader over an immutable byte buffer.
Bits are consumed most-significant first within each byte so a field that
straddles a byte boundary is read as the concatenation of the high-to-low bits
of the bytes that cover it.
*/
package cursor

import (
	"errors"
)

var (
	// ErrTruncated is returned if a read would go past the end of the buffer.
	ErrTruncated = errors.New("cursor: read past end of buffer")
	// ErrMisaligned is returned by byte-oriented reads when the cursor is not
	// on a byte boundary.
	ErrMisaligned = errors.New("cursor: not on a byte boundary")
	// ErrBadWidth is returned if a bit width outside of 1-32 is requested.
	ErrBadWidth = errors.New("cursor: bad bit width")
)

// Cursor tracks a bit position within a byte buffer.
type Cursor struct {
	b   []byte
	pos int
}

// New returns a Cursor positioned at the first bit of b. The buffer is not
// copied and must not be modified while the Cursor is in use.
func New(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the current position in bits.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the length of the underlying buffer in bits.
func (c *Cursor) Len() int {
	return len(c.b) << 3
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() int {
	return c.Len() - c.pos
}

// Aligned reports whether the cursor is on a byte boundary.
func (c *Cursor) Aligned() bool {
	return c.pos&7 == 0
}

// ReadBits returns the next n bits as an unsigned integer and advances the
// cursor by n.
func (c *Cursor) ReadBits(n int) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, ErrBadWidth
	}
	if n > c.Remaining() {
		return 0, ErrTruncated
	}

	var v uint32
	for n > 0 {
		off := c.pos & 7
		avail := 8 - off
		take := avail
		if take > n {
			take = n
		}
		// Bits [off, off+take) of the current byte, counting from the MSB
		bits := (c.b[c.pos>>3] >> (avail - take)) & (1<<take - 1)
		v = v<<take | uint32(bits)
		c.pos += take
		n -= take
	}

	return v, nil
}

// ReadBool reads a single bit.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadBits(1)
	return v != 0, err
}

// Skip advances the cursor by n bits without decoding them.
func (c *Cursor) Skip(n int) error {
	if n < 0 || n > c.Remaining() {
		return ErrTruncated
	}
	c.pos += n
	return nil
}

// ReadUint8 returns the next byte. The cursor must be byte aligned.
func (c *Cursor) ReadUint8() (uint8, error) {
	if !c.Aligned() {
		return 0, ErrMisaligned
	}
	v, err := c.ReadBits(8)
	return uint8(v), err
}

// ReadBytes returns a copy of the next k bytes. The cursor must be byte
// aligned.
func (c *Cursor) ReadBytes(k int) ([]byte, error) {
	if !c.Aligned() {
		return nil, ErrMisaligned
	}
	if k < 0 || k<<3 > c.Remaining() {
		return nil, ErrTruncated
	}
	off := c.pos >> 3
	b := make([]byte, k)
	copy(b, c.b[off:off+k])
	c.pos += k << 3
	return b, nil
}

// ReadFixedUTF16BE consumes exactly byteLen bytes holding a big-endian UTF-16
// string of at most byteLen/2 code units. The string ends early once two
// consecutive zero bytes have been seen; the code unit containing the second
// zero, or completed by the first when the pair straddles two code units, is
// dropped. The cursor always advances by byteLen bytes.
func (c *Cursor) ReadFixedUTF16BE(byteLen int) ([]uint16, error) {
	raw, err := c.ReadBytes(byteLen)
	if err != nil {
		return nil, err
	}

	units := make([]uint16, 0, byteLen/2)
	lastWasNull := false
	for i, b := range raw {
		if lastWasNull && b == 0 {
			if len(units) > 0 {
				units = units[:len(units)-1]
			}
			break
		}
		lastWasNull = b == 0
		if i%2 == 0 {
			units = append(units, uint16(b)<<8)
		} else {
			units[len(units)-1] |= uint16(b)
		}
	}

	return units, nil
}

// Align is a no-op on a byte boundary and returns ErrMisaligned otherwise.
func (c *Cursor) Align() error {
	if !c.Aligned() {
		return ErrMisaligned
	}
	return nil
}
