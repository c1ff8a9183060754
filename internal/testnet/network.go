// Package testnet is an in-memory reference transport and Context
// implementation for the three-helper core. It is not part of the public
// API: production deployments bring their own Gateway/Mesh over a real
// network, and their own Context wired to whatever storage backs
// long-running queries. testnet exists so the core's protocols — PRSS
// negotiate, reshare, shuffle — have something concrete to run against in
// tests.
package testnet

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/step"
	"github.com/luxfi/threshold/pkg/transport"
)

// Network is a shared mailbox fabric connecting exactly three Gateways, one
// per Role. Every (sender, receiver, step, record) tuple gets its own
// single-slot buffered channel, so a Send never blocks on a Receive having
// already been issued and vice versa, matching the Mesh contract's
// independence between peers.
type Network struct {
	log   zerolog.Logger
	mu    sync.Mutex
	boxes map[string]chan []byte
}

// NewNetwork builds an empty fabric. A zero-value logger is a valid,
// silent logger; callers that want visibility should set one with
// WithLogger before wiring Gateways.
func NewNetwork() *Network {
	return &Network{boxes: make(map[string]chan []byte)}
}

// WithLogger attaches a logger used to trace every Send/Receive. Returns n
// for chaining.
func (n *Network) WithLogger(log zerolog.Logger) *Network {
	n.log = log
	return n
}

func (n *Network) box(key string) chan []byte {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch, ok := n.boxes[key]
	if !ok {
		ch = make(chan []byte, 1)
		n.boxes[key] = ch
	}
	return ch
}

// Gateway returns the Gateway for one of the three helpers in this fabric.
func (n *Network) Gateway(self party.Role) *Gateway {
	return &Gateway{net: n, self: self}
}

// Gateway is the testnet implementation of transport.Gateway.
type Gateway struct {
	net  *Network
	self party.Role
}

func (g *Gateway) Role() party.Role { return g.self }

func (g *Gateway) Mesh(s step.Step) transport.Mesh {
	return &mesh{gw: g, step: s}
}

type mesh struct {
	gw   *Gateway
	step step.Step
}

func meshKey(from, to party.Role, s step.Step, id step.RecordID) string {
	return fmt.Sprintf("%s->%s@%s#%d", from, to, s, id)
}

func (m *mesh) Send(ctx context.Context, peer party.Role, id step.RecordID, payload []byte) error {
	key := meshKey(m.gw.self, peer, m.step, id)
	buf := make([]byte, len(payload))
	copy(buf, payload)
	ch := m.gw.net.box(key)
	m.gw.net.log.Debug().
		Str("from", m.gw.self.String()).
		Str("to", peer.String()).
		Str("step", m.step.String()).
		Uint32("record", uint32(id)).
		Int("bytes", len(buf)).
		Msg("testnet: send")
	select {
	case ch <- buf:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *mesh) Receive(ctx context.Context, peer party.Role, id step.RecordID) ([]byte, error) {
	key := meshKey(peer, m.gw.self, m.step, id)
	ch := m.gw.net.box(key)
	select {
	case buf := <-ch:
		m.gw.net.log.Debug().
			Str("from", peer.String()).
			Str("to", m.gw.self.String()).
			Str("step", m.step.String()).
			Uint32("record", uint32(id)).
			Int("bytes", len(buf)).
			Msg("testnet: receive")
		return buf, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
