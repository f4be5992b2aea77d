// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binio provides the byte-stream layer underneath the binser
// codec: a seekable growable memory stream plus fixed-width binary
// readers and writers in a caller-selected byte order.
//
// The package deliberately knows nothing about the binser value model.
// It moves fixed-width integers, floats, and raw byte spans between Go
// values and a stream, and reports failures with enough structure for
// callers to tell a stream fault apart from a format fault:
//
//   - [MemoryStream] -- an in-memory io.Reader/io.Writer/io.Seeker over
//     a growable byte slice, with file-like overwrite-then-extend write
//     semantics
//   - [Writer] -- fixed-width writes (WriteUint8 through WriteFloat64)
//     and raw spans (WriteBytes) against any io.Writer
//   - [Reader] -- the mirror reads against any io.Reader; every read is
//     exact, a short read is an error, never a partial result
//   - [Error] -- the wrapper every failed stream operation surfaces as,
//     carrying the operation name and the underlying cause
//
// Byte order is the standard library's binary.ByteOrder; callers pass
// binary.LittleEndian or binary.BigEndian at construction and the
// choice is fixed for the lifetime of the Reader or Writer.
package binio
