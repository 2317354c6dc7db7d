// Package sample implements unbiased sampling without replacement.
package sample

import "math/rand"

// Take draws up to count elements from pool uniformly at random without
// replacement. Each size-count subset of pool is equally likely, equivalent
// to the first count steps of a Fisher-Yates shuffle. When the pool holds
// count elements or fewer, a copy of the whole pool is returned.
//
// The pool itself is never modified.
func Take(rng *rand.Rand, pool []string, count int) []string {
	if count < 0 {
		count = 0
	}
	if len(pool) <= count {
		out := make([]string, len(pool))
		copy(out, pool)
		return out
	}

	candidates := make([]string, len(pool))
	copy(candidates, pool)

	picked := make([]string, 0, count)
	for len(picked) < count {
		i := rng.Intn(len(candidates))
		picked = append(picked, candidates[i])
		// Remove the chosen candidate by swapping in the tail element.
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}

	return picked
}
