package services

import (
	"math/rand"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// MockGDS generates flight-distribution data on the fly: a drop-in stand-in
// for the Amadeus Self-Service API so development and testing never hit rate
// limits, pricing errors, or carrier restrictions.
//
// All methods are synchronous, side-effect-free functions over the immutable
// Directory: safe to call from any number of goroutines. Randomness is drawn
// from a fresh per-call source so concurrent searches never order-depend on
// each other.
type MockGDS struct {
	dir      *Directory
	log      *zap.Logger
	newRand  func() *rand.Rand
	delayOn  bool
	delayMin time.Duration
	delayMax time.Duration
}

type Option func(*MockGDS)

// WithRandFactory replaces the per-call random source, letting tests supply
// seeded sources and assert structural output deterministically.
func WithRandFactory(f func() *rand.Rand) Option {
	return func(g *MockGDS) { g.newRand = f }
}

// WithSimulatedDelays makes every call sleep a random interval in [min, max]
// to emulate real-world GDS latency during development.
func WithSimulatedDelays(min, max time.Duration) Option {
	return func(g *MockGDS) {
		g.delayOn = true
		g.delayMin = min
		g.delayMax = max
	}
}

var randSeq atomic.Int64

func NewMockGDS(dir *Directory, log *zap.Logger, opts ...Option) *MockGDS {
	if log == nil {
		log = zap.NewNop()
	}
	g := &MockGDS{
		dir: dir,
		log: log,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano() + randSeq.Add(1)))
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
