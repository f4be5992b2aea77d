// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binser

import (
	"errors"
	"fmt"
)

// ErrTooManyItems reports a length-prefixed construct (string, byte
// span, sequence, map) whose length does not fit the unsigned 32-bit
// prefix. Raised at encode time only; decode reads a stored count
// back into a uint32 and never compares it against a limit.
var ErrTooManyItems = errors.New("too many items: length prefix limit is 2^32 - 1")

// MessageError is a free-form format or schema failure: a value the
// traversal cannot represent, a presence byte that is neither 0 nor 1,
// invalid UTF-8 in a decoded string. It carries a human-readable
// description and nothing else.
type MessageError string

func (e MessageError) Error() string {
	return string(e)
}

// Errorf formats a MessageError. Traversal drivers use this to report
// conversion failures (e.g., a byte span of the wrong length for a
// fixed-size array).
func Errorf(format string, args ...any) error {
	return MessageError(fmt.Sprintf(format, args...))
}
