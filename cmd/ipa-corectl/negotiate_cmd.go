package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/threshold/internal/testnet"
	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/prss"
	"github.com/luxfi/threshold/pkg/step"
)

var negotiateCmd = &cobra.Command{
	Use:   "negotiate",
	Short: "Run the PRSS key exchange between three simulated helpers",
	Long:  `Negotiates PRSS endpoints for H1, H2 and H3 over an in-memory transport and reports whether the derived streams agree.`,
	RunE:  runNegotiate,
}

func init() {
	rootCmd.AddCommand(negotiateCmd)
}

func runNegotiate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	net := testnet.NewNetwork().WithLogger(log)
	root := step.Root("ipa-corectl/negotiate")

	endpoints := make(map[party.Role]*prss.Endpoint, 3)
	results := make(chan struct {
		role party.Role
		ep   *prss.Endpoint
	}, 3)

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, role := range party.AllRoles() {
		role := role
		g.Go(func() error {
			ep, err := prss.Negotiate(ctx, net.Gateway(role), root, rand.Reader)
			if err != nil {
				return fmt.Errorf("negotiate failed for %s: %w", role, err)
			}
			results <- struct {
				role party.Role
				ep   *prss.Endpoint
			}{role, ep}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	close(results)
	for r := range results {
		endpoints[r.role] = r.ep
	}

	fmt.Println("negotiated PRSS endpoints for H1, H2, H3")
	for _, role := range party.AllRoles() {
		nbr := role.Peer(party.Right)
		_, myRight := endpoints[role].Indexed().GenerateValues(0)
		nbrLeft, _ := endpoints[nbr].Indexed().GenerateValues(0)
		agree := myRight == nbrLeft
		fmt.Printf("%s.right == %s.left: %v\n", role, nbr, agree)
		if !agree {
			return fmt.Errorf("PRSS disagreement between %s and %s", role, nbr)
		}
	}
	return nil
}
