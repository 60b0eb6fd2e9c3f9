package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrPopulationTooSmall is returned when more items are requested than the
// population holds.
var ErrPopulationTooSmall = errors.New("sample larger than population")

// ErrNegativeSamples is returned when a negative sample count is requested.
var ErrNegativeSamples = errors.New("samples per stratum must be >= 0")

// StratumTooSmallError reports a stratum that cannot supply the requested
// number of samples.
type StratumTooSmallError struct {
	Index int
	Size  int
	Want  int
}

func (e *StratumTooSmallError) Error() string {
	return fmt.Sprintf("stratum %d has %d records, cannot draw %d", e.Index, e.Size, e.Want)
}

func (e *StratumTooSmallError) Unwrap() error {
	return ErrPopulationTooSmall
}

// NewRand returns a PCG-backed generator. A zero seed picks one at random.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Choose draws k distinct items from items, each k-subset equally likely.
// The result is in random order; items is not modified.
func Choose[T any](rng *rand.Rand, items []T, k int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeSamples, k)
	}
	n := len(items)
	if k > n {
		return nil, fmt.Errorf("%w (n = %d, k = %d)", ErrPopulationTooSmall, n, k)
	}

	// Partial Fisher-Yates over an index permutation.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	out := make([]T, k)
	for i := range k {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = items[idx[i]]
	}
	return out, nil
}

// Sample partitions items into strata contiguous ranges and draws
// perStratum items from each without replacement. Draws are concatenated
// in stratum order, so the result has strata*perStratum items.
func Sample[T any](rng *rand.Rand, items []T, strata, perStratum int, policy RemainderPolicy) ([]T, error) {
	if perStratum < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeSamples, perStratum)
	}
	bounds, err := Bounds(len(items), strata, policy)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, strata*perStratum)
	for _, s := range bounds {
		if s.Len() < perStratum {
			return nil, &StratumTooSmallError{Index: s.Index, Size: s.Len(), Want: perStratum}
		}
		picked, err := Choose(rng, items[s.Lower:s.Upper], perStratum)
		if err != nil {
			return nil, fmt.Errorf("stratum %d: %w", s.Index, err)
		}
		out = append(out, picked...)
	}
	return out, nil
}
