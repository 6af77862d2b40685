package ga

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPopulateRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pop, err := Populate(rng, 500, 200, 600, 300)
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	if len(pop) != 500 {
		t.Fatalf("expected 500 rats, got %d", len(pop))
	}
	for i, w := range pop {
		if w < 200 || w > 600 {
			t.Fatalf("rat %d weight %d outside [200, 600]", i, w)
		}
	}
}

func TestPopulateSkewsTowardMode(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pop, err := Populate(rng, 4000, 200, 600, 300)
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	mean, _ := pop.Mean()
	// triangular mean is (200+600+300)/3
	if mean < 355 || mean > 378 {
		t.Fatalf("expected mean near 366, got %.1f", mean)
	}
}

func TestPopulateDegenerateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop, err := Populate(rng, 6, 450, 450, 450)
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	for _, w := range pop {
		if w != 450 {
			t.Fatalf("expected constant population, got %v", pop)
		}
	}
}

func TestPopulateRejectsInvalidDistribution(t *testing.T) {
	cases := []struct {
		name                  string
		count, min, max, mode int
	}{
		{name: "zero count", count: 0, min: 1, max: 3, mode: 2},
		{name: "negative count", count: -4, min: 1, max: 3, mode: 2},
		{name: "mode below min", count: 4, min: 5, max: 10, mode: 4},
		{name: "mode above max", count: 4, min: 5, max: 10, mode: 11},
		{name: "negative min", count: 4, min: -1, max: 10, mode: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			_, err := Populate(rng, tc.count, tc.min, tc.max, tc.mode)
			if !errors.Is(err, ErrInvalidDistribution) {
				t.Fatalf("expected ErrInvalidDistribution, got %v", err)
			}
		})
	}
}

func TestPopulateIsDeterministicForSeed(t *testing.T) {
	a, _ := Populate(rand.New(rand.NewSource(99)), 32, 200, 600, 300)
	b, _ := Populate(rand.New(rand.NewSource(99)), 32, 200, 600, 300)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("populations diverge at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestPopulationStatistics(t *testing.T) {
	pop := Population{300, 100, 400, 200}
	mean, err := pop.Mean()
	if err != nil || mean != 250 {
		t.Fatalf("mean = %v, %v", mean, err)
	}
	max, err := pop.Max()
	if err != nil || max != 400 {
		t.Fatalf("max = %v, %v", max, err)
	}
	min, err := pop.Min()
	if err != nil || min != 100 {
		t.Fatalf("min = %v, %v", min, err)
	}
	sorted := pop.Sorted()
	if sorted[0] != 100 || sorted[3] != 400 {
		t.Fatalf("unexpected sort: %v", sorted)
	}
	if pop[0] != 300 {
		t.Fatal("Sorted must not reorder the receiver")
	}
}

func TestPopulationStatisticsOnEmpty(t *testing.T) {
	var pop Population
	if _, err := pop.Mean(); !errors.Is(err, ErrEmptyPopulation) {
		t.Fatalf("mean: expected ErrEmptyPopulation, got %v", err)
	}
	if _, err := pop.Max(); !errors.Is(err, ErrEmptyPopulation) {
		t.Fatalf("max: expected ErrEmptyPopulation, got %v", err)
	}
	if _, err := pop.Min(); !errors.Is(err, ErrEmptyPopulation) {
		t.Fatalf("min: expected ErrEmptyPopulation, got %v", err)
	}
}
