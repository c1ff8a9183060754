// Package transport declares the contract the core consumes from the
// production message transport: a Gateway hands out per-step Mesh
// channels, and a Mesh offers ordered, addressed send/receive. Both are
// implemented elsewhere (the network layer is explicitly out of scope for
// this core); this package only names the shape every implementation must
// have.
package transport

import (
	"context"

	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/step"
)

// Gateway opens Mesh channels scoped to one Step. A production Gateway also
// demultiplexes by query id, but that is the transport's concern, not the
// core's.
type Gateway interface {
	Role() party.Role
	Mesh(s step.Step) Mesh
}

// Mesh is a single step's ordered, addressed pairwise channel set. A
// message sent at (peer, record id) is delivered to exactly one receiver,
// and the receiver must have asked for that exact (peer, record id) pair
// for delivery to complete. Ordering across distinct RecordIDs on the same
// peer is the caller's responsibility; ordering across distinct peers is
// not guaranteed or required.
type Mesh interface {
	Send(ctx context.Context, peer party.Role, id step.RecordID, payload []byte) error
	Receive(ctx context.Context, peer party.Role, id step.RecordID) ([]byte, error)
}
