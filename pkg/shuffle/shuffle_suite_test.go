package shuffle_test

import (
	"context"
	crand "crypto/rand"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/threshold/internal/testnet"
	"github.com/luxfi/threshold/pkg/field"
	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/prss"
	"github.com/luxfi/threshold/pkg/sharing"
	"github.com/luxfi/threshold/pkg/step"
)

func TestShuffleSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Shuffle Protocol Suite")
}

// triangleGinkgo mirrors triangle() from shuffle_test.go, but reports
// failures through Gomega since Ginkgo specs have no *testing.T.
func triangleGinkgo() map[party.Role]sharing.Context[field.Fp31] {
	net := testnet.NewNetwork()
	root := step.Root("shuffle_suite_test")

	endpoints := make(map[party.Role]*prss.Endpoint)
	lock := make(chan struct{}, 1)
	lock <- struct{}{}

	g, ctx := errgroup.WithContext(context.Background())
	for _, role := range party.AllRoles() {
		role := role
		g.Go(func() error {
			ep, err := prss.Negotiate(ctx, net.Gateway(role), root, crand.Reader)
			if err != nil {
				return err
			}
			<-lock
			endpoints[role] = ep
			lock <- struct{}{}
			return nil
		})
	}
	Expect(g.Wait()).To(Succeed())

	ctxs := make(map[party.Role]sharing.Context[field.Fp31])
	for _, role := range party.AllRoles() {
		ctxs[role] = testnet.NewContext[field.Fp31](net, role, root.Narrow("shuffle"), endpoints[role], field.Fp31Ops)
	}
	return ctxs
}

var _ = Describe("GetTwoOfThreeRandomPermutations", func() {
	var ctxs map[party.Role]sharing.Context[field.Fp31]

	BeforeEach(func() {
		ctxs = triangleGinkgo()
	})

	It("derives permutations every adjacent helper pair agrees on", func() {
		const n = 500
		perms := derivePermutations(ctxs, n)
		for _, role := range party.AllRoles() {
			nbr := role.Peer(party.Right)
			Expect(perms[role][1]).To(Equal(perms[nbr][0]))
		}
	})

	It("derives distinct left and right permutations for every helper", func() {
		const n = 500
		perms := derivePermutations(ctxs, n)
		for _, role := range party.AllRoles() {
			Expect(perms[role][0]).NotTo(Equal(perms[role][1]))
		}
	})
})
