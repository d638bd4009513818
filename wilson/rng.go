// Package wilson - RNG policy shared by the walker and the sampler.
//
// Goals:
//   - Determinism: same seed ⇒ identical root, traces and tree.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across samplers
//     running in parallel.
package wilson

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0
// or supply no RNG at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
