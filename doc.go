// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binser encodes and decodes values in a compact fixed-layout
// binary format for protocols where both sides agree on the exact
// shape of the data out of band.
//
// The format is the deliberate opposite of a self-describing codec:
// no field names, no variant names, no type tags, no schema evolution.
// The byte stream carries only payload bytes, numeric variant ordinals,
// and unsigned 32-bit length prefixes. That makes it smaller and
// faster than a tagged format, and completely useless without the
// agreed schema — which is the point: use it for internal wire formats
// and on-disk state where writer and reader ship from the same tree.
//
// # Wire layout
//
// All multi-byte numerics use the byte order the Encoder or Decoder
// was constructed with.
//
//	unit, unit struct            zero bytes
//	bool                         1 byte, 1 or 0
//	i8..i64, u8..u64             native width, two's complement
//	int, uint                    always 8 bytes, for portability
//	f32, f64                     IEEE-754 bits, native width
//	char                         code point as u32
//	string, bytes                u32 byte length + raw bytes
//	option                       1-byte flag (0 absent, 1 present) + value
//	sequence, map                u32 count + elements (key then value)
//	tuple, tuple/named struct    fields concatenated, no framing
//	newtype struct               the nested value only
//	enum variant                 u32 variant ordinal + payload
//
// Length prefixes are unsigned 32-bit, so no string, byte span,
// sequence, or map may exceed 2^32 - 1 bytes or elements; encoding one
// fails with [ErrTooManyItems] rather than truncating.
//
// # Driving the codec
//
// [Encoder] and [Decoder] expose one method per shape in the value
// model. A traversal — the code that knows a concrete type's shape and
// calls those methods in field order — comes from one of two places:
//
//   - the derive package walks arbitrary Go values with reflection and
//     drives the codec for you:
//
//     data, err := derive.Marshal(value, binary.LittleEndian)
//     err = derive.Unmarshal(data, &value, binary.LittleEndian)
//
//   - a type can implement [Encodable] and [Decodable] itself and be
//     driven through [Encode] and [Decode] (fixed big-endian). Manual
//     implementations get raw stream access through [Encoder.Writer]
//     and [Decoder.Reader] for framing the generic traversal cannot
//     express — magic markers, digests, fixed-width headers — and may
//     call back into the generic methods for any nested field. The
//     envelope package is the canonical example.
//
// [Marshal] and [Unmarshal] are the underlying buffer entry points:
// they bind a fresh codec to an in-memory stream and hand it to a
// caller-supplied traversal function.
//
// An Encoder or Decoder is built for one top-level call against one
// stream and then discarded. Nothing in this package is safe for
// concurrent use of a single instance; independent instances over
// independent streams are fine.
//
// # Errors
//
// Every failure is one of exactly three kinds:
//
//   - [MessageError]: a format or schema fault — a presence byte that
//     is neither 0 nor 1, invalid UTF-8, a traversal that cannot
//     represent a value
//   - [ErrTooManyItems]: a length prefix would overflow 32 bits
//     (encode time only; decode never range-checks a stored count)
//   - *binio.Error: the underlying stream failed (short read, bad
//     seek), passed through unchanged
//
// All three are terminal for the current call; nothing is retried.
package binser
