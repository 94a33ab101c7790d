package chordgen

import "math/rand/v2"

// defaultSeed replaces a zero Config.Seed.
const defaultSeed int64 = 1

// stream returns the generator for one independent draw sequence of seed.
// PCG takes the stream id as its increment half, so the table and the song
// never share state even for equal seeds. Seed 0 is mapped to defaultSeed;
// the result is identical on every platform.
//
// *rand.Rand is not safe for concurrent use; take one stream per goroutine.
func stream(seed int64, id uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewPCG(uint64(seed), id))
}
