package ga

import "math/rand"

// Breed pairs males with females and produces litter pups per pair.
//
// Both pools are shuffled (on copies) and paired by position, stopping at
// the shorter pool. Each pup weighs a uniformly random integer between its
// parents' weights, inclusive; siblings are drawn independently.
func Breed(rng *rand.Rand, males, females Population, litter int) Population {
	m := shuffled(rng, males)
	f := shuffled(rng, females)

	pairs := len(m)
	if len(f) < pairs {
		pairs = len(f)
	}
	if litter <= 0 || pairs == 0 {
		return Population{}
	}

	pups := make(Population, 0, pairs*litter)
	for i := 0; i < pairs; i++ {
		low, high := m[i], f[i]
		if low > high {
			low, high = high, low
		}
		for j := 0; j < litter; j++ {
			pups = append(pups, low+rng.Intn(high-low+1))
		}
	}
	return pups
}

func shuffled(rng *rand.Rand, pool Population) Population {
	out := pool.Clone()
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
