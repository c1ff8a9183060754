package testnet

import (
	"context"

	"github.com/luxfi/threshold/pkg/field"
	"github.com/luxfi/threshold/pkg/ipaerrors"
	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/prss"
	"github.com/luxfi/threshold/pkg/sharing"
	"github.com/luxfi/threshold/pkg/step"
)

// Ctx is the in-memory reference sharing.Context: one per (helper, field
// type) pair, backed by a Network and a negotiated PRSS Endpoint.
type Ctx[F field.Field[F]] struct {
	net *Network
	gw  *Gateway
	st  step.Step
	ep  *prss.Endpoint
	ops field.Ops[F]
}

// NewContext builds the root Ctx for one helper. Callers for all three
// helpers must share the same Network and use Endpoints negotiated against
// each other (see prss.Negotiate), and must pass the same root step name.
func NewContext[F field.Field[F]](net *Network, self party.Role, root step.Step, ep *prss.Endpoint, ops field.Ops[F]) *Ctx[F] {
	return &Ctx[F]{net: net, gw: net.Gateway(self), st: root, ep: ep, ops: ops}
}

func (c *Ctx[F]) Narrow(sub string) sharing.Context[F] {
	return &Ctx[F]{net: c.net, gw: c.gw, st: c.st.Narrow(sub), ep: c.ep, ops: c.ops}
}

func (c *Ctx[F]) Role() party.Role { return c.gw.Role() }

func (c *Ctx[F]) Step() step.Step { return c.st }

func (c *Ctx[F]) PRSS() prss.IndexedSharedRandomness { return c.ep.Indexed() }

func (c *Ctx[F]) fieldFrom(o prss.Output128) F {
	hi, lo := o.Uint64Pair()
	return c.ops.FromUint128(field.Uint128{Hi: hi, Lo: lo})
}

func (c *Ctx[F]) recvField(ctx context.Context, mesh interface {
	Receive(context.Context, party.Role, step.RecordID) ([]byte, error)
}, peer party.Role, id step.RecordID) (F, error) {
	var zero F
	buf, err := mesh.Receive(ctx, peer, id)
	if err != nil {
		return zero, &ipaerrors.TransportError{Peer: peer.String(), Step: c.st.String(), RecordID: uint32(id), Op: "receive", Err: err}
	}
	v, err := c.ops.Deserialize(buf)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Reshare refreshes a replicated share towards recipient to. The two
// helpers adjacent to to — its left neighbor A and right neighbor B —
// already hold valid permuted/updated components of the secret; to's own
// slot is stale and must be rebuilt from theirs. A sends its Right
// component (which by the replicated invariant becomes to's new Left) and
// B sends its Left component (which becomes to's new Right); each send is
// blinded with the PRSS stream A/B already share with to, so the wire
// carries no component value in the clear. to unmasks each with the
// matching stream from its own Endpoint; A and B keep their own pairs
// unchanged, since nothing about the secret they hold has to change for
// them to participate.
func (c *Ctx[F]) Reshare(ctx context.Context, s sharing.Replicated[F], id step.RecordID, to party.Role) (sharing.Replicated[F], error) {
	mesh := c.gw.Mesh(c.st.Narrow("reshare"))
	role := c.Role()
	a := to.Peer(party.Left)
	b := to.Peer(party.Right)

	left, right := c.PRSS().GenerateValues(uint64(id))
	myLeft := c.fieldFrom(left)
	myRight := c.fieldFrom(right)

	switch role {
	case to:
		recvFromA, err := c.recvField(ctx, mesh, a, id)
		if err != nil {
			return sharing.Replicated[F]{}, err
		}
		recvFromB, err := c.recvField(ctx, mesh, b, id)
		if err != nil {
			return sharing.Replicated[F]{}, err
		}
		return sharing.Replicated[F]{
			Left:  recvFromA.Sub(myLeft),
			Right: recvFromB.Sub(myRight),
		}, nil
	case a:
		masked := s.Right.Add(myRight)
		buf := make([]byte, c.ops.SizeInBytes)
		if err := masked.Serialize(buf); err != nil {
			return sharing.Replicated[F]{}, err
		}
		if err := mesh.Send(ctx, to, id, buf); err != nil {
			return sharing.Replicated[F]{}, &ipaerrors.TransportError{Peer: to.String(), Step: c.st.String(), RecordID: uint32(id), Op: "send", Err: err}
		}
		return s, nil
	case b:
		masked := s.Left.Add(myLeft)
		buf := make([]byte, c.ops.SizeInBytes)
		if err := masked.Serialize(buf); err != nil {
			return sharing.Replicated[F]{}, err
		}
		if err := mesh.Send(ctx, to, id, buf); err != nil {
			return sharing.Replicated[F]{}, &ipaerrors.TransportError{Peer: to.String(), Step: c.st.String(), RecordID: uint32(id), Op: "send", Err: err}
		}
		return s, nil
	default:
		// Unreachable with exactly three roles: role is always to, to's
		// left neighbor or to's right neighbor.
		return sharing.Replicated[F]{}, &ipaerrors.BadInputError{Field: "role", Value: role.String(), Reason: "role is not adjacent to the reshare recipient"}
	}
}
