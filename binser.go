// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binser

import (
	"encoding/binary"

	"github.com/bureau-foundation/binser/binio"
)

// EncodeFunc is a traversal that writes one value through enc. The
// derive package builds one with reflection; hand-written traversals
// (enum encodings, custom framing) are ordinary closures or methods.
type EncodeFunc func(enc *Encoder) error

// DecodeFunc is a traversal that reconstructs one value through dec.
type DecodeFunc func(dec *Decoder) error

// Encodable is the manual-codec write contract: the type produces its
// own byte representation against the Encoder, with raw stream access
// through [Encoder.Writer] for framing the generic traversal cannot
// express. Implementations may call the generic methods for nested
// fields; the two compose freely.
type Encodable interface {
	Encode(enc *Encoder) error
}

// Decodable is the manual-codec read contract: the type populates its
// own fields from the Decoder, typically starting from a
// default-constructed value supplied by the caller.
type Decodable interface {
	Decode(dec *Decoder) error
}

// Marshal encodes a single value into a freshly allocated buffer in
// the given byte order. The traversal function is called exactly once
// against an Encoder bound to the buffer.
func Marshal(order binary.ByteOrder, encode EncodeFunc) ([]byte, error) {
	stream := binio.NewMemoryStream()
	enc := NewEncoder(binio.NewWriter(stream, order))
	if err := encode(enc); err != nil {
		return nil, err
	}
	return stream.Bytes(), nil
}

// Unmarshal decodes a single value from data in the given byte order.
// The traversal function is called exactly once against a Decoder
// bound to the buffer; it must consume fields in the same order the
// writer produced them.
func Unmarshal(data []byte, order binary.ByteOrder, decode DecodeFunc) error {
	stream := binio.NewMemoryStreamFrom(data)
	dec := NewDecoder(binio.NewReader(stream, order))
	return decode(dec)
}

// Encode encodes a manual-codec value into a freshly allocated
// buffer. Manual codecs are byte-order-opinionated formats (magic
// markers, digests), so the order is fixed to big-endian rather than
// selectable.
func Encode(value Encodable) ([]byte, error) {
	return Marshal(binary.BigEndian, value.Encode)
}

// Decode decodes a manual-codec value from data, populating the
// caller-supplied value in place. The caller passes a
// default-constructed instance; big-endian, matching [Encode].
func Decode(value Decodable, data []byte) error {
	return Unmarshal(data, binary.BigEndian, value.Decode)
}
