package trainer

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of items using
// Fisher-Yates. The input slice is not modified.
func Shuffle[T any](r *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns n distinct items in shuffled order. n is clamped to
// [0, len(items)].
func Sample[T any](r *rand.Rand, items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return Shuffle(r, items)[:n]
}

// PickOne returns a uniformly chosen item, or false for an empty slice.
func PickOne[T any](r *rand.Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.IntN(len(items))], true
}

// KataSuggestion is one numbered row of a kata draw.
type KataSuggestion struct {
	Num  int
	Name string
}

// DrawKihon selects KihonPerDraw combinations for display.
func DrawKihon(r *rand.Rand) []Combination {
	return Sample(r, Kihon, KihonPerDraw)
}

// DrawKata suggests the Tokui kata followed by one kata from each pool.
func DrawKata(r *rand.Rand) []KataSuggestion {
	out := []KataSuggestion{{Num: 1, Name: TokuiKata}}
	for i, pool := range [][]string{Kata2, Kata3, Kata4} {
		name, _ := PickOne(r, pool)
		out = append(out, KataSuggestion{Num: i + 2, Name: name})
	}
	return out
}

// NewRand returns a PCG source seeded from seed, or from the runtime's
// random source when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
