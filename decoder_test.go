// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binser

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/bureau-foundation/binser/binio"
)

// decoderOver returns a little-endian Decoder positioned at the start
// of data.
func decoderOver(data []byte) *Decoder {
	return NewDecoder(binio.NewReader(binio.NewMemoryStreamFrom(data), binary.LittleEndian))
}

func TestDecodeBool(t *testing.T) {
	value, err := decoderOver([]byte{0x01}).Bool()
	if err != nil {
		t.Fatalf("Bool: %v", err)
	}
	if !value {
		t.Error("Bool(01) = false, want true")
	}

	value, err = decoderOver([]byte{0x00}).Bool()
	if err != nil {
		t.Fatalf("Bool: %v", err)
	}
	if value {
		t.Error("Bool(00) = true, want false")
	}
}

func TestDecodeBoolRejectsOtherBytes(t *testing.T) {
	_, err := decoderOver([]byte{0x02}).Bool()
	var message MessageError
	if !errors.As(err, &message) {
		t.Errorf("Bool(02) = %v, want a MessageError", err)
	}
}

func TestDecodeOptionStrictPresenceByte(t *testing.T) {
	present, err := decoderOver([]byte{0x01, 0x07}).Option()
	if err != nil {
		t.Fatalf("Option: %v", err)
	}
	if !present {
		t.Error("Option(01) = absent, want present")
	}

	present, err = decoderOver([]byte{0x00}).Option()
	if err != nil {
		t.Fatalf("Option: %v", err)
	}
	if present {
		t.Error("Option(00) = present, want absent")
	}

	// Any byte other than 0 or 1 is a format error, not "present".
	_, err = decoderOver([]byte{0x02}).Option()
	var message MessageError
	if !errors.As(err, &message) {
		t.Errorf("Option(02) = %v, want a MessageError", err)
	}
}

func TestDecodeString(t *testing.T) {
	value, err := decoderOver([]byte{0x03, 0x00, 0x00, 0x00, 'f', 'o', 'o'}).String()
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if value != "foo" {
		t.Errorf("String = %q, want %q", value, "foo")
	}
}

func TestDecodeStringRejectsInvalidUTF8(t *testing.T) {
	_, err := decoderOver([]byte{0x02, 0x00, 0x00, 0x00, 0xFF, 0xFE}).String()
	var message MessageError
	if !errors.As(err, &message) {
		t.Errorf("invalid UTF-8 string = %v, want a MessageError", err)
	}
}

func TestDecodeStringShortPayload(t *testing.T) {
	// Length prefix promises 5 bytes, stream holds 2. The stream's
	// own error must surface unchanged.
	_, err := decoderOver([]byte{0x05, 0x00, 0x00, 0x00, 'a', 'b'}).String()
	if !errors.Is(err, binio.ErrReadPastEnd) {
		t.Errorf("short string = %v, want ErrReadPastEnd", err)
	}
}

func TestDecodeCharRejectsSurrogate(t *testing.T) {
	// U+D800 is a surrogate code point, not a Unicode scalar value.
	_, err := decoderOver([]byte{0x00, 0xD8, 0x00, 0x00}).Char()
	var message MessageError
	if !errors.As(err, &message) {
		t.Errorf("surrogate char = %v, want a MessageError", err)
	}
}

func TestDecodeChar(t *testing.T) {
	value, err := decoderOver([]byte{0x78, 0x00, 0x00, 0x00}).Char()
	if err != nil {
		t.Fatalf("Char: %v", err)
	}
	if value != 'x' {
		t.Errorf("Char = %q, want 'x'", value)
	}
}

func TestDecodeVariantOrdinalReadback(t *testing.T) {
	dec := decoderOver([]byte{0x02, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00})
	ordinal, err := dec.Variant()
	if err != nil {
		t.Fatalf("Variant: %v", err)
	}
	if ordinal != 2 {
		t.Errorf("Variant = %d, want 2", ordinal)
	}
	payload, err := dec.Uint32()
	if err != nil {
		t.Fatalf("Uint32: %v", err)
	}
	if payload != 5 {
		t.Errorf("payload = %d, want 5", payload)
	}
}

func TestDecodeSequenceLengthReadback(t *testing.T) {
	// Decode never range-checks a stored count; 2^32-1 reads back
	// as-is even though no conforming stream that short could hold
	// the elements.
	count, err := decoderOver([]byte{0xFF, 0xFF, 0xFF, 0xFF}).SequenceLength()
	if err != nil {
		t.Fatalf("SequenceLength: %v", err)
	}
	if count != 0xFFFFFFFF {
		t.Errorf("SequenceLength = %d, want 2^32-1", count)
	}
}

func TestDecodeBytes(t *testing.T) {
	value, err := decoderOver([]byte{0x02, 0x00, 0x00, 0x00, 0xAB, 0xCD}).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(value) != 2 || value[0] != 0xAB || value[1] != 0xCD {
		t.Errorf("Bytes = % x, want ab cd", value)
	}
}

func TestDecodeLeavesStreamPositioned(t *testing.T) {
	// Two values back to back: decoding the first consumes exactly
	// its own bytes.
	dec := decoderOver([]byte{0x01, 0x20, 0x00, 0x00, 0x00})
	value, err := dec.Bool()
	if err != nil || !value {
		t.Fatalf("Bool = %v, %v", value, err)
	}
	number, err := dec.Uint32()
	if err != nil {
		t.Fatalf("Uint32: %v", err)
	}
	if number != 32 {
		t.Errorf("Uint32 = %d, want 32", number)
	}
}
