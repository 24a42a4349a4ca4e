package integer

import "math/rand"

// DefaultFreqDominance is the minimum share of L a single value must hold
// for Freq to consider itself applicable (§4.6's dominance threshold is an
// Open Question in the base spec; this implementation fixes it at 0.9, the
// same order of magnitude the ratio-threshold tie-break uses elsewhere).
const DefaultFreqDominance = 0.9

const (
	defaultSampleK = 10
	defaultSampleS = 64
)

// fallbackRand backs codecs invoked without an explicit Env.Rand (e.g. from
// a unit test exercising a single codec directly). Production callers go
// through policy.NewOptions and policy.IntegerEnv, which always supply a
// seeded Rand.
var fallbackRand = rand.New(rand.NewSource(1))
