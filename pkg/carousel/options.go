package carousel

import "math/rand/v2"

// Options configures a [Controller].
type Options struct {
	// Shuffle randomly permutes the image order once, at construction.
	Shuffle bool
	// Rand is the random source used for shuffling. Nil uses the
	// automatically seeded global source.
	Rand *rand.Rand
}

// Option mutates [Options] during [NewController].
type Option func(*Options)

// WithShuffle enables or disables shuffling.
func WithShuffle(shuffle bool) Option {
	return func(o *Options) {
		o.Shuffle = shuffle
	}
}

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed shuffles with a deterministic source derived from seed, so the
// same seed always yields the same order. It implies [WithShuffle](true).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Shuffle = true
		o.Rand = rand.New(rand.NewPCG(uint64(seed), 0))
	}
}

func (o *Options) shuffle(images []string) {
	swap := func(i, j int) { images[i], images[j] = images[j], images[i] }
	if o.Rand != nil {
		o.Rand.Shuffle(len(images), swap)
		return
	}
	rand.Shuffle(len(images), swap)
}
