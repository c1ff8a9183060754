package prss

import (
	"github.com/luxfi/threshold/pkg/codec"
	"github.com/luxfi/threshold/pkg/ipaerrors"
)

// PublicKeyChunks splits a 32-byte X25519 public key into four consecutive
// 8-byte chunks, indexed 0..4. Byte k*8+j of the key lands in chunk k,
// position j of the payload — exactly the wire format negotiate puts on
// the transport.
func PublicKeyChunks(pk [32]byte) [4]codec.Chunk {
	var chunks [4]codec.Chunk
	for i := range chunks {
		copy(chunks[i][:], pk[i*codec.PayloadSizeBytes:(i+1)*codec.PayloadSizeBytes])
	}
	return chunks
}

// PublicKeyBuilder reassembles a 32-byte public key from chunks received
// one record at a time. It is deliberately separate from Negotiate so the
// IncompletePublicKey failure mode can be tested directly.
type PublicKeyBuilder struct {
	bytes [32]byte
	count int
}

// Append records the next chunk. Chunks must be appended in order; the
// builder does not reorder them.
func (b *PublicKeyBuilder) Append(chunk codec.Chunk) {
	copy(b.bytes[b.count*codec.PayloadSizeBytes:], chunk[:])
	b.count++
}

// Build returns the assembled public key, or an IncompletePublicKeyError
// whose Count is the number of chunks actually appended — which is also
// the RecordID of the first missing chunk.
func (b *PublicKeyBuilder) Build() ([32]byte, error) {
	if b.count != 4 {
		return [32]byte{}, &ipaerrors.IncompletePublicKeyError{Count: b.count}
	}
	return b.bytes, nil
}
