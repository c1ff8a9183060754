package shuffle

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/threshold/pkg/field"
	"github.com/luxfi/threshold/pkg/party"
	"github.com/luxfi/threshold/pkg/sharing"
	"github.com/luxfi/threshold/pkg/step"
)

type round struct {
	name      string
	recipient party.Role
}

// rounds is the fixed Step1/Step2/Step3 -> H1/H2/H3 map. Shuffle runs them
// in this order; Unshuffle runs them reversed.
var rounds = [3]round{
	{name: "step1", recipient: party.H1},
	{name: "step2", recipient: party.H2},
	{name: "step3", recipient: party.H3},
}

// ShuffleShares runs the three-round oblivious permutation forward: Step1
// through Step3, applying each round's local permutation with ApplyInv.
func ShuffleShares[F field.Field[F]](ctx context.Context, sctx sharing.Context[F], input []sharing.Replicated[F], left, right Permutation) ([]sharing.Replicated[F], error) {
	cur := input
	for _, r := range rounds {
		next, err := shuffleOrUnshuffleOnce(ctx, sctx, cur, r, left, right, true)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// UnshuffleShares runs the three rounds in reverse, Step3 through Step1,
// applying each round's local permutation with Apply. Given the same
// (left, right) permutation pair used to shuffle, this is shuffle's exact
// inverse.
func UnshuffleShares[F field.Field[F]](ctx context.Context, sctx sharing.Context[F], input []sharing.Replicated[F], left, right Permutation) ([]sharing.Replicated[F], error) {
	cur := input
	for i := len(rounds) - 1; i >= 0; i-- {
		next, err := shuffleOrUnshuffleOnce(ctx, sctx, cur, rounds[i], left, right, false)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// shuffleOrUnshuffleOnce is shuffle_or_unshuffle_once: narrow into the
// round's step, have the two non-recipient helpers apply their shared
// permutation locally, then have all three helpers reshare every element
// toward the recipient concurrently.
func shuffleOrUnshuffleOnce[F field.Field[F]](ctx context.Context, sctx sharing.Context[F], input []sharing.Replicated[F], r round, left, right Permutation, isShuffle bool) ([]sharing.Replicated[F], error) {
	roundCtx := sctx.Narrow(r.name)
	role := roundCtx.Role()

	working := input
	if role != r.recipient {
		perm := right
		if r.recipient.Peer(party.Left) == role {
			perm = left
		}
		if isShuffle {
			working = ApplyInv(perm, input)
		} else {
			working = Apply(perm, input)
		}
	}

	out := make([]sharing.Replicated[F], len(working))
	g, gctx := errgroup.WithContext(ctx)
	for i := range working {
		i := i
		g.Go(func() error {
			reshared, err := roundCtx.Reshare(gctx, working[i], step.RecordID(i), r.recipient)
			if err != nil {
				return err
			}
			out[i] = reshared
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
