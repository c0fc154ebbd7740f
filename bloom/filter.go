// Package bloom provides cheap duplicate-field detection using Bloom
// filters over field checksums.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter keyed by field checksums. A positive Test
// means the checksum may already be present and an exact comparison is
// worthwhile; a negative means the field is definitely new.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected fields
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a field checksum in the filter.
func (f *Filter) Add(sum uint64) {
	f.f.Add(checksumKey(sum))
}

// Test returns true if the checksum might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(sum uint64) bool {
	return f.f.Test(checksumKey(sum))
}

// EstimatedCount returns the approximate number of checksums in the
// filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func checksumKey(sum uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], sum)
	return key[:]
}
