// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package envelope frames an opaque payload with a magic marker, a
// stable identity, a BLAKE3 integrity digest, and optional
// compression. It is the canonical manual codec built on binser's
// escape hatch: the fixed-width header fields (magic, version, ID,
// digest) are written through raw stream access, while the
// variable-length body goes through the generic length-prefixed
// encoding — the two compose within one frame.
//
// Wire layout (big-endian, via binser.Encode):
//
//	magic        4 raw bytes "BENV"
//	version      u8, currently 1
//	id           16 raw bytes (UUID)
//	digest       32 raw bytes, BLAKE3 of the uncompressed payload
//	compression  u8 tag: 0 none, 1 lz4, 2 zstd
//	length       u32, uncompressed payload length
//	body         u32-prefixed bytes, compressed per the tag
//
// Compression is best-effort: when the compressed body would not be
// smaller than the payload, the frame is written uncompressed and the
// tag on the wire says so. Decoding verifies magic, version, tag,
// length, and digest; any mismatch is a format error, and a frame
// that decodes cleanly is bit-exact with what was encoded.
package envelope
