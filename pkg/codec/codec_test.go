package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/threshold/pkg/codec"
)

func TestChunkRoundTrip(t *testing.T) {
	c := codec.Chunk{1, 2, 3, 4, 5, 6, 7, 8}
	buf := make([]byte, codec.PayloadSizeBytes)
	require.NoError(t, c.Serialize(buf))

	got, err := codec.DeserializeChunk(buf)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestChunkUndersizedBuffer(t *testing.T) {
	c := codec.Chunk{}
	err := c.Serialize(make([]byte, 4))
	require.Error(t, err)

	_, err = codec.DeserializeChunk(make([]byte, 4))
	require.Error(t, err)
}

func TestAnyBytePatternRoundTrips(t *testing.T) {
	for b := 0; b < 256; b += 17 {
		var c codec.Chunk
		for i := range c {
			c[i] = byte(b + i)
		}
		buf := make([]byte, codec.PayloadSizeBytes)
		require.NoError(t, c.Serialize(buf))
		got, err := codec.DeserializeChunk(buf)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
