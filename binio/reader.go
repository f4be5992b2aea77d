// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Reader reads fixed-width values and raw byte spans from a stream in
// a byte order fixed at construction. Every read is exact: it consumes
// precisely the requested number of bytes or fails. A stream that runs
// out mid-read surfaces [ErrReadPastEnd], never a partial value.
type Reader struct {
	source  io.Reader
	order   binary.ByteOrder
	scratch [8]byte
}

// NewReader returns a Reader that reads from source in the given byte
// order.
func NewReader(source io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{source: source, order: order}
}

// Order returns the byte order the Reader was constructed with.
func (r *Reader) Order() binary.ByteOrder {
	return r.order
}

func (r *Reader) readFull(op string, buf []byte) error {
	if _, err := io.ReadFull(r.source, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrReadPastEnd
		}
		return &Error{Op: op, Err: err}
	}
	return nil
}

// ReadBytes reads exactly n raw bytes into a fresh slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &Error{Op: "read bytes", Err: fmt.Errorf("negative length %d", n)}
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := r.readFull("read bytes", buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.readFull("read u8", r.scratch[:1]); err != nil {
		return 0, err
	}
	return r.scratch[0], nil
}

// ReadUint16 reads 2 bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.readFull("read u16", r.scratch[:2]); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.scratch[:2]), nil
}

// ReadUint32 reads 4 bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.readFull("read u32", r.scratch[:4]); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.scratch[:4]), nil
}

// ReadUint64 reads 8 bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.readFull("read u64", r.scratch[:8]); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.scratch[:8]), nil
}

// ReadInt8 reads 1 byte, two's complement.
func (r *Reader) ReadInt8() (int8, error) {
	value, err := r.ReadUint8()
	return int8(value), err
}

// ReadInt16 reads 2 bytes, two's complement.
func (r *Reader) ReadInt16() (int16, error) {
	value, err := r.ReadUint16()
	return int16(value), err
}

// ReadInt32 reads 4 bytes, two's complement.
func (r *Reader) ReadInt32() (int32, error) {
	value, err := r.ReadUint32()
	return int32(value), err
}

// ReadInt64 reads 8 bytes, two's complement.
func (r *Reader) ReadInt64() (int64, error) {
	value, err := r.ReadUint64()
	return int64(value), err
}

// ReadFloat32 reads 4 bytes as IEEE-754 bits.
func (r *Reader) ReadFloat32() (float32, error) {
	value, err := r.ReadUint32()
	return math.Float32frombits(value), err
}

// ReadFloat64 reads 8 bytes as IEEE-754 bits.
func (r *Reader) ReadFloat64() (float64, error) {
	value, err := r.ReadUint64()
	return math.Float64frombits(value), err
}
