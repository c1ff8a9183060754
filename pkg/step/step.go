// Package step implements the hierarchical protocol naming used to
// disambiguate channels between helpers. All three helpers must narrow
// identically so that the channel ids they derive line up.
package step

import (
	"github.com/luxfi/threshold/pkg/party"
)

// Step is an immutable hierarchical label. The zero value is the root step.
type Step struct {
	path  string
	depth int
}

// Root returns the top-level step for a query, named for operator logs.
func Root(name string) Step {
	return Step{path: name}
}

// Narrow returns a child step, appending sub to the current path. Calling
// Narrow with the same sequence of names on every helper keeps channel ids
// aligned across the cycle.
func (s Step) Narrow(sub string) Step {
	if s.path == "" {
		return Step{path: sub, depth: s.depth + 1}
	}
	return Step{path: s.path + "/" + sub, depth: s.depth + 1}
}

// String returns the canonical dot-free path form used in logs and as the
// wire-independent channel discriminator.
func (s Step) String() string {
	if s.path == "" {
		return "/"
	}
	return s.path
}

// Depth reports how many Narrow calls separate s from the root.
func (s Step) Depth() int {
	return s.depth
}

// RecordID is a monotonically assigned index that, together with a
// ChannelID, uniquely names a message on the wire. It is required to be
// stable across helpers: every party must assign the same RecordID to the
// same logical message.
type RecordID uint32

// ChannelID names one pairwise, ordered send/receive stream.
type ChannelID struct {
	Peer party.Role
	Step Step
}

func (c ChannelID) String() string {
	return c.Peer.String() + "@" + c.Step.String()
}
