package ragdoll

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is the seed each Core's generator starts at.
const DefaultSeed uint32 = 12345

// newReseedableRNG builds the core's explicit, reproducible generator
// from a 32-bit seed. Nothing in this core consumes it today; Reset's seed
// parameter only needs the generator to exist and be re-seedable so that
// whatever future addition needs randomness has a deterministic source
// ready to go. Built as a distuv.Uniform wrapping an x/exp/rand source
// (a PCG source with 64-bit output; the 32-bit seed is widened to
// uint64), so it is not itself a 32-bit generator.
func newReseedableRNG(seed uint32) distuv.Uniform {
	src := rand.NewSource(uint64(seed))
	return distuv.Uniform{Min: 0, Max: 1, Src: src}
}
