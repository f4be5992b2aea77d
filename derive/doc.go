// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package derive drives the binser codec for arbitrary Go types using
// reflection, so most types need no hand-written traversal:
//
//	data, err := derive.Marshal(value, binary.LittleEndian)
//	err = derive.Unmarshal(data, &value, binary.LittleEndian)
//
// The mapping from Go types to the binser value model:
//
//	bool                      bool
//	int8..int64, int          i8..i64, platform int (8 bytes)
//	uint8..uint64, uint       u8..u64, platform uint (8 bytes)
//	float32, float64          f32, f64
//	string                    string (u32 length + UTF-8 bytes)
//	[]byte                    bytes (u32 length + raw bytes)
//	[]T                       sequence (u32 count + elements)
//	[N]byte                   N raw bytes, no prefix (tuple semantics)
//	[N]T                      elements in order, no prefix
//	map[K]V                   map (u32 count + key/value pairs)
//	*T                        option (1-byte flag + value if non-nil)
//	struct                    fields in declaration order, no framing
//
// Struct fields are visited in declaration order; unexported fields
// and fields tagged `binser:"-"` are skipped. Map entries are written
// in sorted key order when the key kind has a natural order (strings,
// integers, floats) so the same logical map always produces identical
// bytes.
//
// The wire format cannot tell nil from empty: both encode as count 0.
// Decoding normalizes to nil — a count of 0 produces a nil slice or
// map, so every encodable value round-trips to itself except an empty
// non-nil collection, which round-trips to nil.
//
// A type implementing binser.Encodable or binser.Decodable is
// delegated to instead of being walked, so manual codecs compose with
// derived ones in both directions and at any depth.
//
// The top-level pointer passed to Marshal or Unmarshal addresses the
// value and is not part of its shape: Marshal(&v) and Marshal(v)
// produce the same bytes, and Unmarshal always requires a non-nil
// pointer target. Pointers below the top level are options.
//
// Go reflection cannot see sum types or distinguish rune from int32,
// so enum variants and chars are reached through hand-written
// traversals against the Encoder/Decoder methods directly, not
// through this package. Channels, functions, interfaces, complex
// numbers, and uintptr have no wire representation and fail with a
// message error.
package derive
