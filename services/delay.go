package services

import (
	"context"
	"math/rand"
	"time"
)

// maybeDelay sleeps a bounded random interval when simulated latency is
// enabled. It holds no resources and blocks only the calling goroutine;
// cancelling ctx returns immediately.
func (g *MockGDS) maybeDelay(ctx context.Context, rng *rand.Rand) {
	if !g.delayOn || g.delayMax <= 0 {
		return
	}
	d := g.delayMin
	if span := g.delayMax - g.delayMin; span > 0 {
		d += time.Duration(rng.Int63n(int64(span)))
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
