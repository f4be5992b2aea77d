// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binio

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer writes fixed-width values and raw byte spans to a stream in
// a byte order fixed at construction. Writer adds no buffering or
// framing of its own; every call is a single write against the
// underlying stream.
type Writer struct {
	sink    io.Writer
	order   binary.ByteOrder
	scratch [8]byte
}

// NewWriter returns a Writer that writes to sink in the given byte
// order.
func NewWriter(sink io.Writer, order binary.ByteOrder) *Writer {
	return &Writer{sink: sink, order: order}
}

// Order returns the byte order the Writer was constructed with.
func (w *Writer) Order() binary.ByteOrder {
	return w.order
}

func (w *Writer) write(op string, buf []byte) error {
	if _, err := w.sink.Write(buf); err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}

// WriteBytes writes a raw byte span with no length prefix or other
// framing.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return w.write("write bytes", data)
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(value uint8) error {
	w.scratch[0] = value
	return w.write("write u8", w.scratch[:1])
}

// WriteUint16 writes value as 2 bytes.
func (w *Writer) WriteUint16(value uint16) error {
	w.order.PutUint16(w.scratch[:2], value)
	return w.write("write u16", w.scratch[:2])
}

// WriteUint32 writes value as 4 bytes.
func (w *Writer) WriteUint32(value uint32) error {
	w.order.PutUint32(w.scratch[:4], value)
	return w.write("write u32", w.scratch[:4])
}

// WriteUint64 writes value as 8 bytes.
func (w *Writer) WriteUint64(value uint64) error {
	w.order.PutUint64(w.scratch[:8], value)
	return w.write("write u64", w.scratch[:8])
}

// WriteInt8 writes value as 1 byte, two's complement.
func (w *Writer) WriteInt8(value int8) error {
	w.scratch[0] = uint8(value)
	return w.write("write i8", w.scratch[:1])
}

// WriteInt16 writes value as 2 bytes, two's complement.
func (w *Writer) WriteInt16(value int16) error {
	w.order.PutUint16(w.scratch[:2], uint16(value))
	return w.write("write i16", w.scratch[:2])
}

// WriteInt32 writes value as 4 bytes, two's complement.
func (w *Writer) WriteInt32(value int32) error {
	w.order.PutUint32(w.scratch[:4], uint32(value))
	return w.write("write i32", w.scratch[:4])
}

// WriteInt64 writes value as 8 bytes, two's complement.
func (w *Writer) WriteInt64(value int64) error {
	w.order.PutUint64(w.scratch[:8], uint64(value))
	return w.write("write i64", w.scratch[:8])
}

// WriteFloat32 writes the IEEE-754 bits of value as 4 bytes.
func (w *Writer) WriteFloat32(value float32) error {
	w.order.PutUint32(w.scratch[:4], math.Float32bits(value))
	return w.write("write f32", w.scratch[:4])
}

// WriteFloat64 writes the IEEE-754 bits of value as 8 bytes.
func (w *Writer) WriteFloat64(value float64) error {
	w.order.PutUint64(w.scratch[:8], math.Float64bits(value))
	return w.write("write f64", w.scratch[:8])
}
