// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package envelope

import (
	"bytes"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/binser"
)

// magic identifies an envelope frame. Fixed protocol constant.
var magic = [4]byte{'B', 'E', 'N', 'V'}

// version is the current frame version, bumped on any layout change.
const version uint8 = 1

// Compression identifies the algorithm applied to the frame body.
// Tags are wire constants — changing them breaks frame compatibility.
type Compression uint8

const (
	// None leaves the body uncompressed. Also what ends up on the
	// wire when the requested algorithm cannot shrink the payload.
	None Compression = 0

	// LZ4 applies LZ4 block compression: fast, modest ratio, good
	// default for binary payloads.
	LZ4 Compression = 1

	// Zstd applies zstd at the default level: better ratios for
	// text-like payloads at higher CPU cost.
	Zstd Compression = 2
)

// String returns the human-readable name of a compression tag.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// zstdEncoder and zstdDecoder are package-level and reused across
// frames; both are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic("envelope: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("envelope: zstd decoder initialization failed: " + err.Error())
	}
}

// Envelope is a framed payload. It implements binser.Encodable and
// binser.Decodable, so it moves through binser.Encode and
// binser.Decode and can also sit inside larger derived structures.
type Envelope struct {
	// ID is a stable identity for the frame, carried as 16 raw bytes.
	ID uuid.UUID

	// Compression is the algorithm to apply when encoding. After a
	// decode it reports what was actually on the wire, which may be
	// None even if the writer asked for compression (incompressible
	// payload).
	Compression Compression

	// Payload is the uncompressed frame content.
	Payload []byte
}

// New returns an envelope around payload with a fresh random ID.
func New(payload []byte, compression Compression) *Envelope {
	return &Envelope{ID: uuid.New(), Compression: compression, Payload: payload}
}

// Encode writes the frame. Header fields go through the raw stream
// writer; the body goes through the generic length-prefixed encoding.
func (e *Envelope) Encode(enc *binser.Encoder) error {
	if uint64(len(e.Payload)) > math.MaxUint32 {
		return binser.ErrTooManyItems
	}
	body, tag, err := compress(e.Payload, e.Compression)
	if err != nil {
		return err
	}
	digest := blake3.Sum256(e.Payload)

	writer := enc.Writer()
	if err := writer.WriteBytes(magic[:]); err != nil {
		return err
	}
	if err := enc.Uint8(version); err != nil {
		return err
	}
	if err := writer.WriteBytes(e.ID[:]); err != nil {
		return err
	}
	if err := writer.WriteBytes(digest[:]); err != nil {
		return err
	}
	if err := enc.Uint8(uint8(tag)); err != nil {
		return err
	}
	if err := enc.Uint32(uint32(len(e.Payload))); err != nil {
		return err
	}
	return enc.Bytes(body)
}

// Decode reads a frame, decompresses the body, and verifies it
// against the header. Every verification failure is a format error
// carrying what was found.
func (e *Envelope) Decode(dec *binser.Decoder) error {
	reader := dec.Reader()

	foundMagic, err := reader.ReadBytes(len(magic))
	if err != nil {
		return err
	}
	if !bytes.Equal(foundMagic, magic[:]) {
		return binser.Errorf("bad envelope magic % x, want % x", foundMagic, magic[:])
	}

	foundVersion, err := dec.Uint8()
	if err != nil {
		return err
	}
	if foundVersion != version {
		return binser.Errorf("unsupported envelope version %d, want %d", foundVersion, version)
	}

	id, err := reader.ReadBytes(len(e.ID))
	if err != nil {
		return err
	}
	copy(e.ID[:], id)

	digest, err := reader.ReadBytes(32)
	if err != nil {
		return err
	}

	tag, err := dec.Uint8()
	if err != nil {
		return err
	}

	length, err := dec.Uint32()
	if err != nil {
		return err
	}

	body, err := dec.Bytes()
	if err != nil {
		return err
	}

	payload, err := decompress(body, Compression(tag), int(length))
	if err != nil {
		return err
	}
	if found := blake3.Sum256(payload); !bytes.Equal(found[:], digest) {
		return binser.Errorf("envelope digest mismatch: frame is corrupt")
	}

	e.Compression = Compression(tag)
	e.Payload = payload
	return nil
}

// compress applies the requested algorithm, falling back to None when
// the result would not be smaller than the input. Returns the body
// and the tag that actually applies to it.
func compress(payload []byte, requested Compression) ([]byte, Compression, error) {
	switch requested {
	case None:
		return payload, None, nil

	case LZ4:
		destination := make([]byte, lz4.CompressBlockBound(len(payload)))
		written, err := lz4.CompressBlock(payload, destination, nil)
		if err != nil {
			return nil, 0, binser.Errorf("lz4 compress: %v", err)
		}
		// CompressBlock returns 0 for incompressible input.
		if written == 0 || written >= len(payload) {
			return payload, None, nil
		}
		return destination[:written], LZ4, nil

	case Zstd:
		compressed := zstdEncoder.EncodeAll(payload, nil)
		if len(compressed) >= len(payload) {
			return payload, None, nil
		}
		return compressed, Zstd, nil

	default:
		return nil, 0, binser.Errorf("unsupported compression tag %d", uint8(requested))
	}
}

// decompress inverts compress, checking the recovered length against
// the header.
func decompress(body []byte, tag Compression, length int) ([]byte, error) {
	switch tag {
	case None:
		if len(body) != length {
			return nil, binser.Errorf("uncompressed body is %d bytes, header says %d", len(body), length)
		}
		return body, nil

	case LZ4:
		destination := make([]byte, length)
		read, err := lz4.UncompressBlock(body, destination)
		if err != nil {
			return nil, binser.Errorf("lz4 decompress: %v", err)
		}
		if read != length {
			return nil, binser.Errorf("lz4 decompress: got %d bytes, header says %d", read, length)
		}
		return destination, nil

	case Zstd:
		payload, err := zstdDecoder.DecodeAll(body, make([]byte, 0, length))
		if err != nil {
			return nil, binser.Errorf("zstd decompress: %v", err)
		}
		if len(payload) != length {
			return nil, binser.Errorf("zstd decompress: got %d bytes, header says %d", len(payload), length)
		}
		return payload, nil

	default:
		return nil, binser.Errorf("unsupported compression tag %d", uint8(tag))
	}
}
