// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binser

import (
	"math"

	"github.com/bureau-foundation/binser/binio"
)

// Encoder writes values to a bound stream in the fixed wire layout
// (see the package documentation for the full table). One method per
// shape in the value model; a traversal driver calls them in the
// declared field order of the concrete type. An Encoder serves one
// top-level encode call and is then discarded.
type Encoder struct {
	writer *binio.Writer
}

// NewEncoder returns an Encoder bound to writer. The byte order is
// the writer's and is fixed for the Encoder's lifetime.
func NewEncoder(writer *binio.Writer) *Encoder {
	return &Encoder{writer: writer}
}

// Writer returns the bound stream writer. This is the manual-codec
// escape hatch: an [Encodable] implementation uses it to emit framing
// the generic traversal cannot express (magic markers, digests,
// fixed-width spans) and composes it freely with the generic methods.
func (e *Encoder) Writer() *binio.Writer {
	return e.writer
}

// Unit writes nothing. Unit values and unit structs occupy zero bytes
// on the wire; the method exists so generated traversals can visit
// every field uniformly.
func (e *Encoder) Unit() error {
	return nil
}

// Bool writes one byte: 1 for true, 0 for false.
func (e *Encoder) Bool(value bool) error {
	if value {
		return e.writer.WriteUint8(1)
	}
	return e.writer.WriteUint8(0)
}

// Int8 writes value as 1 byte.
func (e *Encoder) Int8(value int8) error {
	return e.writer.WriteInt8(value)
}

// Int16 writes value as 2 bytes.
func (e *Encoder) Int16(value int16) error {
	return e.writer.WriteInt16(value)
}

// Int32 writes value as 4 bytes.
func (e *Encoder) Int32(value int32) error {
	return e.writer.WriteInt32(value)
}

// Int64 writes value as 8 bytes.
func (e *Encoder) Int64(value int64) error {
	return e.writer.WriteInt64(value)
}

// Int writes a platform-width integer as 8 bytes, so streams written
// on a 64-bit machine decode on a 32-bit one and vice versa.
func (e *Encoder) Int(value int) error {
	return e.writer.WriteInt64(int64(value))
}

// Uint8 writes value as 1 byte.
func (e *Encoder) Uint8(value uint8) error {
	return e.writer.WriteUint8(value)
}

// Uint16 writes value as 2 bytes.
func (e *Encoder) Uint16(value uint16) error {
	return e.writer.WriteUint16(value)
}

// Uint32 writes value as 4 bytes.
func (e *Encoder) Uint32(value uint32) error {
	return e.writer.WriteUint32(value)
}

// Uint64 writes value as 8 bytes.
func (e *Encoder) Uint64(value uint64) error {
	return e.writer.WriteUint64(value)
}

// Uint writes a platform-width unsigned integer as 8 bytes.
func (e *Encoder) Uint(value uint) error {
	return e.writer.WriteUint64(uint64(value))
}

// Float32 writes the IEEE-754 bits of value as 4 bytes.
func (e *Encoder) Float32(value float32) error {
	return e.writer.WriteFloat32(value)
}

// Float64 writes the IEEE-754 bits of value as 8 bytes.
func (e *Encoder) Float64(value float64) error {
	return e.writer.WriteFloat64(value)
}

// Char writes a Unicode scalar value as its code point in 4 bytes.
func (e *Encoder) Char(value rune) error {
	return e.writer.WriteUint32(uint32(value))
}

// String writes a u32 byte-length prefix followed by the UTF-8 bytes
// of value. Fails with [ErrTooManyItems] if the string is longer than
// 2^32 - 1 bytes.
func (e *Encoder) String(value string) error {
	if err := e.prefix(len(value)); err != nil {
		return err
	}
	return e.writer.WriteBytes([]byte(value))
}

// Bytes writes a u32 byte-length prefix followed by the raw bytes.
// Fails with [ErrTooManyItems] if the span is longer than 2^32 - 1
// bytes.
func (e *Encoder) Bytes(value []byte) error {
	if err := e.prefix(len(value)); err != nil {
		return err
	}
	return e.writer.WriteBytes(value)
}

// Option writes the 1-byte presence flag: 1 for present, 0 for
// absent. When present, the caller encodes the nested value
// immediately after.
func (e *Encoder) Option(present bool) error {
	return e.Bool(present)
}

// SequenceLength writes the u32 element-count prefix for a sequence.
// The caller then encodes exactly count elements back to back; the
// format adds no per-element framing. Fails with [ErrTooManyItems] if
// count exceeds 2^32 - 1.
func (e *Encoder) SequenceLength(count int) error {
	return e.prefix(count)
}

// MapLength writes the u32 pair-count prefix for a map. The caller
// then encodes exactly count key/value pairs, each key immediately
// followed by its value. Fails with [ErrTooManyItems] if count
// exceeds 2^32 - 1.
func (e *Encoder) MapLength(count int) error {
	return e.prefix(count)
}

// Variant writes the u32 ordinal of an enum variant: its zero-based
// position in the statically declared variant order. The caller then
// encodes the variant's payload (nothing for a unit variant, the
// nested value for a newtype variant, the fields in order for tuple
// and struct variants).
func (e *Encoder) Variant(index uint32) error {
	return e.writer.WriteUint32(index)
}

// prefix writes a u32 length prefix, rejecting lengths that do not
// fit. Tuples and structs have statically known arity and never call
// this.
func (e *Encoder) prefix(count int) error {
	if uint64(count) > math.MaxUint32 {
		return ErrTooManyItems
	}
	return e.writer.WriteUint32(uint32(count))
}
