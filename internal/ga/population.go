package ga

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Population is an ordered collection of rat weights in grams.
// A rat has no identity beyond its weight.
type Population []int

// Populate creates count weights drawn from a triangular distribution
// over [min, max] peaking at mode.
func Populate(rng *rand.Rand, count, min, max, mode int) (Population, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count %d must be positive", ErrInvalidDistribution, count)
	}
	if min < 0 {
		return nil, fmt.Errorf("%w: min %d must not be negative", ErrInvalidDistribution, min)
	}
	if min > mode || mode > max {
		return nil, fmt.Errorf("%w: need min <= mode <= max, got %d/%d/%d", ErrInvalidDistribution, min, mode, max)
	}

	pop := make(Population, count)
	for i := range pop {
		pop[i] = int(triangular(rng, float64(min), float64(max), float64(mode)))
	}
	return pop, nil
}

// triangular samples by inverting the triangular CDF.
func triangular(rng *rand.Rand, low, high, mode float64) float64 {
	if high == low {
		return low
	}
	u := rng.Float64()
	c := (mode - low) / (high - low)
	if u > c {
		u = 1 - u
		c = 1 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// Size returns the number of rats
func (p Population) Size() int {
	return len(p)
}

// Clone returns an independent copy
func (p Population) Clone() Population {
	if p == nil {
		return nil
	}
	out := make(Population, len(p))
	copy(out, p)
	return out
}

// Sorted returns an ascending copy, leaving p untouched
func (p Population) Sorted() Population {
	out := p.Clone()
	sort.Ints(out)
	return out
}

// Sum returns the total weight
func (p Population) Sum() int {
	total := 0
	for _, w := range p {
		total += w
	}
	return total
}

// Mean returns the average weight
func (p Population) Mean() (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPopulation
	}
	return float64(p.Sum()) / float64(len(p)), nil
}

// Max returns the heaviest weight
func (p Population) Max() (int, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPopulation
	}
	best := p[0]
	for _, w := range p[1:] {
		if w > best {
			best = w
		}
	}
	return best, nil
}

// Min returns the lightest weight
func (p Population) Min() (int, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPopulation
	}
	least := p[0]
	for _, w := range p[1:] {
		if w < least {
			least = w
		}
	}
	return least, nil
}
