// Package bloom provides candidate deduplication using Bloom filters.
// Archive index pages commonly link the same tarball more than once
// (sort-order variants, column links, mirror hosts); the filter keeps
// each candidate once without holding every key in a map.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for candidate deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected candidates
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records key and reports whether it was already present. A true
// result may rarely be a false positive; a dropped duplicate candidate is
// harmless since sync would have skipped the second copy anyway.
func (f *Filter) Seen(key string) bool {
	return f.f.TestAndAddString(key)
}

// EstimatedCount returns the approximate number of candidates recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
