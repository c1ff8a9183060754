// Package codec implements the fixed-width message framing used by the
// transport: every message on the wire is a block of at most
// PayloadSizeBytes bytes, little-endian, with no length prefix.
package codec

import "github.com/luxfi/threshold/pkg/ipaerrors"

// PayloadSizeBytes is the transport's fixed message size. It is tied to the
// four-chunk X25519 public-key split in pkg/prss: a 32-byte key is carried
// in exactly 32/PayloadSizeBytes record slots.
const PayloadSizeBytes = 8

func init() {
	// The chunk size and message payload size are coupled by construction;
	// if the transport is ever widened this assertion is the first thing
	// that needs to change, deliberately and not by accident.
	const x25519KeyLen = 32
	if PayloadSizeBytes*4 != x25519KeyLen {
		panic("codec: four PayloadSizeBytes chunks must carry exactly one X25519 public key")
	}
}

// Message is any fixed-width value the transport can carry.
type Message interface {
	SizeInBytes() int
	Serialize(buf []byte) error
}

// Chunk is an 8-byte payload, the concrete Message type used to carry a
// slice of a larger value (such as one quarter of an X25519 public key)
// across the transport.
type Chunk [PayloadSizeBytes]byte

func (c Chunk) SizeInBytes() int { return PayloadSizeBytes }

func (c Chunk) Serialize(buf []byte) error {
	if len(buf) < PayloadSizeBytes {
		return &ipaerrors.CodecError{Kind: ipaerrors.WriteBufferFull, TypeName: "codec.Chunk", Required: PayloadSizeBytes, Available: len(buf)}
	}
	copy(buf[:PayloadSizeBytes], c[:])
	return nil
}

// DeserializeChunk reads the fixed-width prefix of buf into a Chunk.
func DeserializeChunk(buf []byte) (Chunk, error) {
	var c Chunk
	if len(buf) < PayloadSizeBytes {
		return c, &ipaerrors.CodecError{Kind: ipaerrors.SerializationTooShort, TypeName: "codec.Chunk", Required: PayloadSizeBytes, Available: len(buf)}
	}
	copy(c[:], buf[:PayloadSizeBytes])
	return c, nil
}
