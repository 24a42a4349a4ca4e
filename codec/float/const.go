package float

// DefaultFreqDominance mirrors codec/integer's threshold.
const DefaultFreqDominance = 0.9
