// Package policy implements the adaptive codec selection policy (C7): for
// each page, estimate every applicable codec's compression ratio and pick
// the best one, falling back to the generic byte codec unless a
// specialized codec clears it by a configurable margin.
package policy

import (
	"math/rand"

	"github.com/strawboat/strawboat/format"
)

// DefaultRatioThreshold is the minimum multiplicative improvement a
// specialized codec must show over the generic default before it is chosen;
// 1.0 means "any strict improvement wins" -- ties go to the generic
// codec, which is cheaper to decode and has no recursive sub-page
// machinery to unwind.
const DefaultRatioThreshold = 1.0

// Options configures one Select call; the functional-options pattern
// mirrors the teacher's internal/options usage for blob encoder config.
type Options struct {
	forbidden      format.Forbidden
	ratioThreshold float64
	freqDominance  float64
	sampleK        int
	sampleS        int
	rand           *rand.Rand
}

// Option configures Options.
type Option func(*Options)

// WithForbidden excludes the given codec ids from consideration, used both
// by callers (e.g. "never use Zstd, this data stays in RAM only") and
// internally to prevent Dict/Freq from recursing into themselves.
func WithForbidden(f format.Forbidden) Option {
	return func(o *Options) { o.forbidden = f }
}

// WithRatioThreshold overrides DefaultRatioThreshold.
func WithRatioThreshold(t float64) Option {
	return func(o *Options) { o.ratioThreshold = t }
}

// WithFreqDominance overrides Freq's dominance trigger (default 0.9).
func WithFreqDominance(d float64) Option {
	return func(o *Options) { o.freqDominance = d }
}

// WithSampleWindow overrides the C11 sample harness's K strides of S values.
func WithSampleWindow(k, s int) Option {
	return func(o *Options) { o.sampleK, o.sampleS = k, s }
}

// WithRand fixes the sampler's RNG, needed for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rand = r }
}

// NewOptions builds an Options from the given functional options, filling
// in defaults for anything left unset.
func NewOptions(opts ...Option) Options {
	o := Options{
		ratioThreshold: DefaultRatioThreshold,
		rand:           rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) forbids(id format.CodecID) bool {
	return o.forbidden != nil && o.forbidden.Has(id)
}

func (o Options) withExtraForbidden(extra format.CodecID) format.Forbidden {
	merged := format.NewForbidden(extra)
	for id := range o.forbidden {
		merged[id] = struct{}{}
	}

	return merged
}

// Merge returns a copy of o with extra's ids added to its forbidden set.
// Used to thread a recursive sub-page's codec exclusion (e.g. Dict
// forbidding itself for its own index stream) through the caller's
// already-configured Options without losing the caller's own exclusions.
func (o Options) Merge(extra format.Forbidden) Options {
	merged := make(format.Forbidden, len(o.forbidden)+len(extra))
	for id := range o.forbidden {
		merged[id] = struct{}{}
	}
	for id := range extra {
		merged[id] = struct{}{}
	}
	o.forbidden = merged

	return o
}
