package prss

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/threshold/pkg/codec"
	"github.com/luxfi/threshold/pkg/ipaerrors"
	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/step"
	"github.com/luxfi/threshold/pkg/transport"
)

// exchangeStepName is the fixed child step negotiate narrows into, so all
// three helpers derive the same ChannelIDs for the key exchange.
const exchangeStepName = "prss_exchange"

// Negotiate upgrades a triangle of ordered, authenticated byte channels
// into a PRSS Endpoint: two X25519 shared secrets, one with each neighbor,
// carried over four rounds of 8-byte chunks because the transport caps
// messages at codec.PayloadSizeBytes. All four sends/receives within a
// round run concurrently; the next round does not start until every
// operation in the current one completes, which keeps record-id ordering
// intact on every channel.
func Negotiate(ctx context.Context, gw transport.Gateway, parent step.Step, rng io.Reader) (*Endpoint, error) {
	st := parent.Narrow(exchangeStepName)
	mesh := gw.Mesh(st)

	leftPeer := gw.Role().Peer(party.Left)
	rightPeer := gw.Role().Peer(party.Right)

	setup, err := Prepare(rng)
	if err != nil {
		return nil, err
	}
	pkLeft, pkRight := setup.PublicKeys()
	sendLeftChunks := PublicKeyChunks(pkLeft)
	sendRightChunks := PublicKeyChunks(pkRight)

	var recvLeftBuilder, recvRightBuilder PublicKeyBuilder

	for i := 0; i < 4; i++ {
		id := step.RecordID(i)
		sendLeft := sendLeftChunks[i]
		sendRight := sendRightChunks[i]

		var recvLeft, recvRight codec.Chunk

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			buf := make([]byte, codec.PayloadSizeBytes)
			if err := sendLeft.Serialize(buf); err != nil {
				return err
			}
			if err := mesh.Send(gctx, leftPeer, id, buf); err != nil {
				return &ipaerrors.TransportError{Peer: leftPeer.String(), Step: st.String(), RecordID: uint32(id), Op: "send", Err: err}
			}
			return nil
		})
		g.Go(func() error {
			buf := make([]byte, codec.PayloadSizeBytes)
			if err := sendRight.Serialize(buf); err != nil {
				return err
			}
			if err := mesh.Send(gctx, rightPeer, id, buf); err != nil {
				return &ipaerrors.TransportError{Peer: rightPeer.String(), Step: st.String(), RecordID: uint32(id), Op: "send", Err: err}
			}
			return nil
		})
		g.Go(func() error {
			buf, err := mesh.Receive(gctx, leftPeer, id)
			if err != nil {
				return &ipaerrors.TransportError{Peer: leftPeer.String(), Step: st.String(), RecordID: uint32(id), Op: "receive", Err: err}
			}
			chunk, err := codec.DeserializeChunk(buf)
			if err != nil {
				return err
			}
			recvLeft = chunk
			return nil
		})
		g.Go(func() error {
			buf, err := mesh.Receive(gctx, rightPeer, id)
			if err != nil {
				return &ipaerrors.TransportError{Peer: rightPeer.String(), Step: st.String(), RecordID: uint32(id), Op: "receive", Err: err}
			}
			chunk, err := codec.DeserializeChunk(buf)
			if err != nil {
				return err
			}
			recvRight = chunk
			return nil
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}

		recvLeftBuilder.Append(recvLeft)
		recvRightBuilder.Append(recvRight)
	}

	recvLeftPk, err := recvLeftBuilder.Build()
	if err != nil {
		return nil, err
	}
	recvRightPk, err := recvRightBuilder.Build()
	if err != nil {
		return nil, err
	}

	return setup.Finish(recvLeftPk, recvRightPk), nil
}
