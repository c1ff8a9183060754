package party_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/threshold/pkg/party"
)

func TestCycle(t *testing.T) {
	assert.Equal(t, party.H2, party.H1.Peer(party.Right))
	assert.Equal(t, party.H3, party.H2.Peer(party.Right))
	assert.Equal(t, party.H1, party.H3.Peer(party.Right))

	assert.Equal(t, party.H3, party.H1.Peer(party.Left))
	assert.Equal(t, party.H1, party.H2.Peer(party.Left))
	assert.Equal(t, party.H2, party.H3.Peer(party.Left))
}

func TestLeftAndRightAreInverses(t *testing.T) {
	for _, r := range party.AllRoles() {
		assert.Equal(t, r, r.Peer(party.Right).Peer(party.Left))
		assert.Equal(t, r, r.Peer(party.Left).Peer(party.Right))
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "H1", party.H1.String())
	assert.Equal(t, "H2", party.H2.String())
	assert.Equal(t, "H3", party.H3.String())
}
