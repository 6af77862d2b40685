package ga

import (
	"math"
	"math/rand"
)

// Mutate rescales each pup's weight with probability odds by a factor drawn
// uniformly from [min, max], rounding to the nearest gram. The slice is
// modified in place and returned.
func Mutate(rng *rand.Rand, pups Population, odds, min, max float64) Population {
	for i, w := range pups {
		if rng.Float64() < odds {
			factor := min + (max-min)*rng.Float64()
			pups[i] = rescale(w, factor)
		}
	}
	return pups
}

// rescale never returns a negative weight
func rescale(w int, factor float64) int {
	v := math.Round(float64(w) * factor)
	if v < 0 {
		return 0
	}
	return int(v)
}
