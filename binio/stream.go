// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binio

import (
	"fmt"
	"io"
)

// MemoryStream is a seekable in-memory byte stream over a growable
// backing slice. Writes overwrite existing bytes at the current
// position and extend the stream when they run past the end, matching
// file semantics. The zero value is an empty stream positioned at 0.
type MemoryStream struct {
	data   []byte
	offset int
}

// NewMemoryStream returns an empty stream positioned at offset 0.
func NewMemoryStream() *MemoryStream {
	return &MemoryStream{}
}

// NewMemoryStreamFrom returns a stream over data, positioned at
// offset 0. The stream takes ownership of data; the caller must not
// mutate it afterwards.
func NewMemoryStreamFrom(data []byte) *MemoryStream {
	return &MemoryStream{data: data}
}

// Bytes returns the stream's backing slice, from the start of the
// stream through the highest byte ever written, independent of the
// current position.
func (s *MemoryStream) Bytes() []byte {
	return s.data
}

// Len returns the total number of bytes in the stream.
func (s *MemoryStream) Len() int {
	return len(s.data)
}

// Read copies bytes from the current position into p and advances the
// position. At end of stream it returns io.EOF, following the
// io.Reader contract; exact-read enforcement lives in [Reader].
func (s *MemoryStream) Read(p []byte) (int, error) {
	if s.offset >= len(s.data) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += n
	return n, nil
}

// Write copies p into the stream at the current position, overwriting
// existing bytes and growing the backing slice as needed, then
// advances the position. A position previously seeked past the end is
// zero-filled up to the write.
func (s *MemoryStream) Write(p []byte) (int, error) {
	if gap := s.offset - len(s.data); gap > 0 {
		s.data = append(s.data, make([]byte, gap)...)
	}
	n := copy(s.data[s.offset:], p)
	if n < len(p) {
		s.data = append(s.data, p[n:]...)
	}
	s.offset += len(p)
	return len(p), nil
}

// Seek sets the position for the next Read or Write, interpreted per
// the io.Seeker contract. Seeking past the end is allowed (a later
// write zero-fills the gap); seeking before the start is an error.
func (s *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = int64(s.offset) + offset
	case io.SeekEnd:
		target = int64(len(s.data)) + offset
	default:
		return 0, &Error{Op: "seek", Err: fmt.Errorf("invalid whence %d", whence)}
	}
	if target < 0 {
		return 0, &Error{Op: "seek", Err: ErrInvalidSeek}
	}
	s.offset = int(target)
	return target, nil
}
