// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binser

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/bureau-foundation/binser/binio"
)

// encodeOne runs a single-method traversal and returns the bytes.
func encodeOne(t *testing.T, order binary.ByteOrder, encode EncodeFunc) []byte {
	t.Helper()
	data, err := Marshal(order, encode)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return data
}

func TestEncodeUnit(t *testing.T) {
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		return enc.Unit()
	})
	if len(data) != 0 {
		t.Errorf("unit = % x, want zero bytes", data)
	}
}

func TestEncodeBool(t *testing.T) {
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		return enc.Bool(true)
	})
	if !bytes.Equal(data, []byte{0x01}) {
		t.Errorf("bool true = % x, want 01", data)
	}

	data = encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		return enc.Bool(false)
	})
	if !bytes.Equal(data, []byte{0x00}) {
		t.Errorf("bool false = % x, want 00", data)
	}
}

func TestEncodeUint32LittleEndian(t *testing.T) {
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		return enc.Uint32(32)
	})
	want := []byte{0x20, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Errorf("u32(32) = % x, want % x", data, want)
	}
}

func TestEncodeUint32BigEndian(t *testing.T) {
	data := encodeOne(t, binary.BigEndian, func(enc *Encoder) error {
		return enc.Uint32(32)
	})
	want := []byte{0x00, 0x00, 0x00, 0x20}
	if !bytes.Equal(data, want) {
		t.Errorf("u32(32) = % x, want % x", data, want)
	}
}

func TestEncodeString(t *testing.T) {
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		return enc.String("foo")
	})
	want := []byte{0x03, 0x00, 0x00, 0x00, 0x66, 0x6F, 0x6F}
	if !bytes.Equal(data, want) {
		t.Errorf("string \"foo\" = % x, want % x", data, want)
	}
}

func TestEncodeOptionLaw(t *testing.T) {
	absent := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		return enc.Option(false)
	})
	if !bytes.Equal(absent, []byte{0x00}) {
		t.Errorf("absent option = % x, want exactly 00", absent)
	}

	present := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		if err := enc.Option(true); err != nil {
			return err
		}
		return enc.Uint8(1)
	})
	if !bytes.Equal(present, []byte{0x01, 0x01}) {
		t.Errorf("present option u8(1) = % x, want 01 01", present)
	}
}

func TestEncodeChar(t *testing.T) {
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		return enc.Char('x')
	})
	want := []byte{0x78, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Errorf("char 'x' = % x, want % x", data, want)
	}
}

func TestEncodeVariantWithPayload(t *testing.T) {
	// Third declared variant (ordinal 2) carrying a u32 payload of 5.
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		if err := enc.Variant(2); err != nil {
			return err
		}
		return enc.Uint32(5)
	})
	want := []byte{0x02, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Errorf("variant(2) u32(5) = % x, want % x", data, want)
	}
}

func TestEncodeSequencePrefix(t *testing.T) {
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		if err := enc.SequenceLength(3); err != nil {
			return err
		}
		for _, value := range []uint8{1, 2, 3} {
			if err := enc.Uint8(value); err != nil {
				return err
			}
		}
		return nil
	})
	want := []byte{0x03, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03}
	if !bytes.Equal(data, want) {
		t.Errorf("sequence [1 2 3] = % x, want % x", data, want)
	}
}

func TestEncodeLengthLimit(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("length above 2^32 is not representable in int on this platform")
	}
	atLimit := int(uint64(math.MaxUint32))
	overLimit := int(uint64(math.MaxUint32) + 1)

	stream := binio.NewMemoryStream()
	enc := NewEncoder(binio.NewWriter(stream, binary.LittleEndian))

	if err := enc.SequenceLength(atLimit); err != nil {
		t.Errorf("SequenceLength(2^32-1): %v", err)
	}
	if err := enc.SequenceLength(overLimit); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("SequenceLength(2^32) = %v, want ErrTooManyItems", err)
	}
	if err := enc.MapLength(overLimit); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("MapLength(2^32) = %v, want ErrTooManyItems", err)
	}
}

func TestEncodePlatformIntWidth(t *testing.T) {
	data := encodeOne(t, binary.LittleEndian, func(enc *Encoder) error {
		if err := enc.Int(-1); err != nil {
			return err
		}
		return enc.Uint(1)
	})
	// Platform-width integers always occupy 8 bytes on the wire.
	if len(data) != 16 {
		t.Errorf("int + uint = %d bytes, want 16", len(data))
	}
}

func TestEncodeStreamErrorPassthrough(t *testing.T) {
	stream := binio.NewMemoryStreamFrom(make([]byte, 4))
	reader := binio.NewReader(stream, binary.LittleEndian)
	// Exhaust the stream, then confirm the decoder surfaces the
	// stream's own error type unchanged.
	if _, err := reader.ReadBytes(4); err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	dec := NewDecoder(reader)
	_, err := dec.Uint32()
	var streamError *binio.Error
	if !errors.As(err, &streamError) {
		t.Errorf("exhausted-stream decode error is %T (%v), want *binio.Error", err, err)
	}
}
