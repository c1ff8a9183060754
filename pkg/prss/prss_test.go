package prss_test

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/threshold/internal/testnet"
	"github.com/luxfi/threshold/pkg/codec"
	"github.com/luxfi/threshold/pkg/ipaerrors"
	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/prss"
	"github.com/luxfi/threshold/pkg/step"
)

func TestPublicKeyBuilderIncomplete(t *testing.T) {
	var b prss.PublicKeyBuilder
	b.Append(codec.Chunk{})
	b.Append(codec.Chunk{})
	_, err := b.Build()
	require.Error(t, err)
	var incomplete *ipaerrors.IncompletePublicKeyError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 2, incomplete.Count)
	assert.Equal(t, uint32(2), incomplete.RecordID())
}

func TestPublicKeyBuilderComplete(t *testing.T) {
	var b prss.PublicKeyBuilder
	var want [32]byte
	_, _ = rand.Read(want[:])
	for _, c := range prss.PublicKeyChunks(want) {
		b.Append(c)
	}
	got, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestNegotiateAgreement runs Negotiate concurrently for all three helpers
// over an in-memory Network and checks that each pair of neighbors ends up
// with matching PRSS streams: H_k's Right stream must equal H_{k+1}'s Left
// stream at every index, which is exactly the correlation the shuffle and
// reshare protocols depend on.
func TestNegotiateAgreement(t *testing.T) {
	net := testnet.NewNetwork()
	root := step.Root("negotiate_test")

	endpoints := make(map[party.Role]*prss.Endpoint)
	lock := make(chan struct{}, 1)
	lock <- struct{}{}

	g, ctx := errgroup.WithContext(context.Background())
	for _, role := range party.AllRoles() {
		role := role
		g.Go(func() error {
			gw := net.Gateway(role)
			ep, err := prss.Negotiate(ctx, gw, root, rand.Reader)
			if err != nil {
				return err
			}
			<-lock
			endpoints[role] = ep
			lock <- struct{}{}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, role := range party.AllRoles() {
		me := endpoints[role]
		rightNeighbor := endpoints[role.Peer(party.Right)]

		meIndexed := me.Indexed()
		rightIndexed := rightNeighbor.Indexed()

		_, meRight := meIndexed.GenerateValues(42)
		rightLeft, _ := rightIndexed.GenerateValues(42)

		assert.Equal(t, meRight, rightLeft, "role %s Right stream must match its right neighbor's Left stream", role)
	}
}
