package sampler

import (
	"errors"
	"fmt"
)

// legacyRemainderIndex is the loop index after which the legacy rule extends
// the next stratum to the end of the list.
const legacyRemainderIndex = 98

// ErrNoStrata is returned when the stratum count is not positive.
var ErrNoStrata = errors.New("stratum count must be positive")

// RemainderPolicy decides which stratum absorbs the records left over by
// integer division of the list length by the stratum count.
type RemainderPolicy int

const (
	// RemainderLast extends the final stratum to the end of the list.
	RemainderLast RemainderPolicy = iota

	// RemainderLegacy extends only the stratum at index 99, after loop
	// index 98, regardless of the stratum count. With any other count the
	// remainder is never sampled.
	RemainderLegacy
)

func (p RemainderPolicy) String() string {
	switch p {
	case RemainderLast:
		return "last"
	case RemainderLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("RemainderPolicy(%d)", int(p))
	}
}

// Stratum is a contiguous half-open range [Lower, Upper) of the list.
type Stratum struct {
	Index int
	Lower int
	Upper int
}

// Len returns the number of records in the stratum.
func (s Stratum) Len() int {
	return s.Upper - s.Lower
}

// Bounds partitions a list of n records into strata contiguous ranges of
// n/strata records each, applying policy to the remainder.
func Bounds(n, strata int, policy RemainderPolicy) ([]Stratum, error) {
	if strata <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNoStrata, strata)
	}
	if n < 0 {
		return nil, fmt.Errorf("list length must be >= 0, got %d", n)
	}

	size := n / strata
	out := make([]Stratum, 0, strata)

	switch policy {
	case RemainderLast:
		for i := range strata {
			upper := (i + 1) * size
			if i == strata-1 {
				upper = n
			}
			out = append(out, Stratum{Index: i, Lower: i * size, Upper: upper})
		}

	case RemainderLegacy:
		lower, upper := 0, size
		for i := range strata {
			// Slicing past the end yields an empty stratum.
			out = append(out, Stratum{Index: i, Lower: min(lower, n), Upper: min(upper, n)})
			lower = upper
			if i == legacyRemainderIndex {
				upper = n
			} else {
				upper += size
			}
		}

	default:
		return nil, fmt.Errorf("unknown remainder policy %v", policy)
	}

	return out, nil
}

// Dropped returns how many trailing records of an n-record list fall outside
// every stratum.
func Dropped(n int, strata []Stratum) int {
	if len(strata) == 0 {
		return n
	}
	covered := 0
	for _, s := range strata {
		covered = max(covered, s.Upper)
	}
	return max(n-covered, 0)
}
