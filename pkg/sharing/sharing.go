// Package sharing defines the replicated (2-of-3) secret sharing contract
// the protocol core runs against: the Replicated value type, and a generic
// Context every field-typed protocol narrows and reshares through.
package sharing

import (
	"context"

	"github.com/luxfi/threshold/pkg/field"
	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/prss"
	"github.com/luxfi/threshold/pkg/step"
)

// Replicated is one helper's share of a (2,3)-replicated secret: the helper
// at role k holds (x_k, x_{k+1}) for some cyclic indexing of the three
// additive terms that sum to the secret.
type Replicated[F field.Field[F]] struct {
	Left  F
	Right F
}

// Add combines two replicated shares component-wise. Reconstructing a
// Replicated share still requires summing across all three helpers; this
// is the local half of that sum.
func (s Replicated[F]) Add(o Replicated[F]) Replicated[F] {
	return Replicated[F]{Left: s.Left.Add(o.Left), Right: s.Right.Add(o.Right)}
}

// Context is the capability set a protocol gets to run one step of an MPC
// computation: step scoping, its own role, the PRSS streams it shares with
// each neighbor, and Reshare, the one primitive the shuffle (and any other
// protocol resharing a value towards a new holder) is built on.
//
// Reshare is a contract, not owned by this package: the concrete
// implementation lives wherever the transport does, since it needs a live
// Mesh to exchange blinded components. internal/testnet provides the
// in-memory reference implementation this module tests against.
type Context[F field.Field[F]] interface {
	Narrow(sub string) Context[F]
	Role() party.Role
	Step() step.Step
	PRSS() prss.IndexedSharedRandomness
	Reshare(ctx context.Context, s Replicated[F], id step.RecordID, to party.Role) (Replicated[F], error)
}
