// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binio

import "errors"

// ErrReadPastEnd reports a read that ran off the end of the stream.
// Reads in this package are exact: asking for more bytes than the
// stream holds is a failure, never a partial result.
var ErrReadPastEnd = errors.New("read past end of stream")

// ErrInvalidSeek reports a seek that would place the stream position
// before the start of the stream.
var ErrInvalidSeek = errors.New("seek before start of stream")

// Error wraps a failed stream operation with the operation name.
// Every failure surfaced by this package is an *Error, so callers one
// layer up can classify "the stream broke" apart from their own
// format-level failures with a single errors.As check.
type Error struct {
	// Op names the operation that failed (e.g., "read u32").
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return "binio: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
