// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binser

import (
	"unicode/utf8"

	"github.com/bureau-foundation/binser/binio"
)

// Decoder reads values from a bound stream, mirroring [Encoder]
// method for method. The caller's traversal driver knows the expected
// shape statically and calls the matching method; the Decoder never
// guesses. Each read consumes exactly the bytes its layout specifies
// and leaves the stream positioned immediately after. A Decoder
// serves one top-level decode call and is then discarded.
type Decoder struct {
	reader *binio.Reader
}

// NewDecoder returns a Decoder bound to reader. The byte order is the
// reader's and is fixed for the Decoder's lifetime.
func NewDecoder(reader *binio.Reader) *Decoder {
	return &Decoder{reader: reader}
}

// Reader returns the bound stream reader. This is the manual-codec
// escape hatch, the mirror of [Encoder.Writer]: a [Decodable]
// implementation uses it to consume framing the generic traversal
// cannot express.
func (d *Decoder) Reader() *binio.Reader {
	return d.reader
}

// Unit consumes nothing. Unit values and unit structs occupy zero
// bytes on the wire.
func (d *Decoder) Unit() error {
	return nil
}

// Bool reads one byte. The wire value must be exactly 0 or 1; any
// other byte means the stream is not positioned at a bool and the
// schemas have diverged, which is a format error rather than a value.
func (d *Decoder) Bool() (bool, error) {
	value, err := d.reader.ReadUint8()
	if err != nil {
		return false, err
	}
	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, Errorf("invalid bool byte 0x%02x, want 0 or 1", value)
	}
}

// Int8 reads 1 byte.
func (d *Decoder) Int8() (int8, error) {
	return d.reader.ReadInt8()
}

// Int16 reads 2 bytes.
func (d *Decoder) Int16() (int16, error) {
	return d.reader.ReadInt16()
}

// Int32 reads 4 bytes.
func (d *Decoder) Int32() (int32, error) {
	return d.reader.ReadInt32()
}

// Int64 reads 8 bytes.
func (d *Decoder) Int64() (int64, error) {
	return d.reader.ReadInt64()
}

// Int reads a platform-width integer from its 8-byte encoding. On a
// 32-bit platform a stored value outside the native int range is a
// format error, not a silent truncation.
func (d *Decoder) Int() (int, error) {
	value, err := d.reader.ReadInt64()
	if err != nil {
		return 0, err
	}
	converted := int(value)
	if int64(converted) != value {
		return 0, Errorf("int value %d does not fit the platform int", value)
	}
	return converted, nil
}

// Uint8 reads 1 byte.
func (d *Decoder) Uint8() (uint8, error) {
	return d.reader.ReadUint8()
}

// Uint16 reads 2 bytes.
func (d *Decoder) Uint16() (uint16, error) {
	return d.reader.ReadUint16()
}

// Uint32 reads 4 bytes.
func (d *Decoder) Uint32() (uint32, error) {
	return d.reader.ReadUint32()
}

// Uint64 reads 8 bytes.
func (d *Decoder) Uint64() (uint64, error) {
	return d.reader.ReadUint64()
}

// Uint reads a platform-width unsigned integer from its 8-byte
// encoding, with the same range check as [Decoder.Int].
func (d *Decoder) Uint() (uint, error) {
	value, err := d.reader.ReadUint64()
	if err != nil {
		return 0, err
	}
	converted := uint(value)
	if uint64(converted) != value {
		return 0, Errorf("uint value %d does not fit the platform uint", value)
	}
	return converted, nil
}

// Float32 reads 4 bytes as IEEE-754 bits.
func (d *Decoder) Float32() (float32, error) {
	return d.reader.ReadFloat32()
}

// Float64 reads 8 bytes as IEEE-754 bits.
func (d *Decoder) Float64() (float64, error) {
	return d.reader.ReadFloat64()
}

// Char reads a 4-byte code point and validates that it is a Unicode
// scalar value (not a surrogate, not beyond U+10FFFF).
func (d *Decoder) Char() (rune, error) {
	value, err := d.reader.ReadUint32()
	if err != nil {
		return 0, err
	}
	char := rune(value)
	if !utf8.ValidRune(char) {
		return 0, Errorf("invalid char code point U+%X", value)
	}
	return char, nil
}

// String reads a u32 byte-length prefix and exactly that many bytes,
// which must be valid UTF-8.
func (d *Decoder) String() (string, error) {
	length, err := d.reader.ReadUint32()
	if err != nil {
		return "", err
	}
	data, err := d.reader.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", Errorf("string of %d bytes is not valid UTF-8", length)
	}
	return string(data), nil
}

// Bytes reads a u32 byte-length prefix and exactly that many raw
// bytes into a fresh slice.
func (d *Decoder) Bytes() ([]byte, error) {
	length, err := d.reader.ReadUint32()
	if err != nil {
		return nil, err
	}
	return d.reader.ReadBytes(int(length))
}

// Option reads the 1-byte presence flag. The byte must be exactly 0
// (absent) or 1 (present); anything else is a format error. When
// present, the caller decodes the nested value immediately after.
func (d *Decoder) Option() (bool, error) {
	flag, err := d.reader.ReadUint8()
	if err != nil {
		return false, err
	}
	switch flag {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, Errorf("invalid option presence byte 0x%02x, want 0 or 1", flag)
	}
}

// SequenceLength reads the u32 element-count prefix of a sequence.
// The caller then decodes exactly that many elements; there is no
// end-of-sequence sentinel. The count is returned as stored, never
// compared against a limit.
func (d *Decoder) SequenceLength() (uint32, error) {
	return d.reader.ReadUint32()
}

// MapLength reads the u32 pair-count prefix of a map. The caller then
// decodes exactly that many key/value pairs.
func (d *Decoder) MapLength() (uint32, error) {
	return d.reader.ReadUint32()
}

// Variant reads the u32 ordinal of an enum variant. Selecting the
// decoding branch for that ordinal — and rejecting an ordinal with no
// declared variant — is the caller's job; only the caller's schema
// knows how many variants exist.
func (d *Decoder) Variant() (uint32, error) {
	return d.reader.ReadUint32()
}
