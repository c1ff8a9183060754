package step_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/step"
)

func TestNarrowIsDeterministic(t *testing.T) {
	root := step.Root("query-1")
	a := root.Narrow("prss_exchange").Narrow("chunk")
	b := root.Narrow("prss_exchange").Narrow("chunk")
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 2, a.Depth())
}

func TestNarrowDivergesOnDifferentSubsteps(t *testing.T) {
	root := step.Root("query-1")
	a := root.Narrow("shuffle").Narrow("step1")
	b := root.Narrow("shuffle").Narrow("step2")
	assert.NotEqual(t, a.String(), b.String())
}

func TestChannelIDString(t *testing.T) {
	c := step.ChannelID{Peer: party.H2, Step: step.Root("q").Narrow("x")}
	assert.Equal(t, "H2@q/x", c.String())
}
