package minecord

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/42triangles/minecord/internal/config"
)

// Seed holds the two PCG seed words of one render.
type Seed struct {
	S1, S2 uint64
}

func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(s.S1, s.S2))
}

// SeedsFrom draws n independent seeds from r.
func SeedsFrom(r *rand.Rand, n int) []Seed {
	seeds := make([]Seed, n)
	for i := range seeds {
		seeds[i] = Seed{r.Uint64(), r.Uint64()}
	}
	return seeds
}

// RenderMany renders one board per seed concurrently. Every render owns its
// own random source, so results depend only on the seeds and are returned in
// seed order. The first failure cancels the remaining renders.
func RenderMany(ctx context.Context, conf config.Conf, seeds []Seed) ([]*Board, error) {
	boards := make([]*Board, len(seeds))
	g, gCtx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			board, err := Render(conf, seed.Rand())
			if err != nil {
				return fmt.Errorf("board %d: %w", i, err)
			}
			boards[i] = board
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boards, nil
}
