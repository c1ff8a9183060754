package shuffle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/threshold/pkg/shuffle"
)

func TestApplyApplyInvAreInverses(t *testing.T) {
	perm := shuffle.Permutation{3, 1, 4, 0, 2}
	v := []string{"a", "b", "c", "d", "e"}

	forward := shuffle.Apply(perm, v)
	back := shuffle.ApplyInv(perm, forward)
	assert.Equal(t, v, back)
}

func TestApplyGatherSemantics(t *testing.T) {
	perm := shuffle.Permutation{2, 0, 1}
	v := []int{10, 20, 30}
	got := shuffle.Apply(perm, v)
	assert.Equal(t, []int{30, 10, 20}, got)
}

func TestApplyInvScatterSemantics(t *testing.T) {
	perm := shuffle.Permutation{2, 0, 1}
	v := []int{10, 20, 30}
	got := shuffle.ApplyInv(perm, v)
	// v'[perm[i]] = v[i]: v'[2]=10, v'[0]=20, v'[1]=30
	assert.Equal(t, []int{20, 30, 10}, got)
}
