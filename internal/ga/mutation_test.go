package ga

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestMutateZeroOddsIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	pups := make(Population, 1000)
	for i := range pups {
		pups[i] = 100 + i
	}
	want := pups.Clone()
	got := Mutate(rng, pups, 0, 0.1, 10)
	if !reflect.DeepEqual(got, want) {
		t.Fatal("expected no mutation with zero odds")
	}
}

func TestMutatePinnedMultiplierIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	got := Mutate(rng, Population{1000}, 1.0, 1.0, 1.0)
	if !reflect.DeepEqual(got, Population{1000}) {
		t.Fatalf("expected [1000], got %v", got)
	}
}

func TestMutateCertainOddsRescalesEveryPup(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	got := Mutate(rng, Population{10, 25, 333}, 1.0, 2.0, 2.0)
	if !reflect.DeepEqual(got, Population{20, 50, 666}) {
		t.Fatalf("expected doubled weights, got %v", got)
	}
}

func TestMutateStaysWithinMultiplierRange(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	orig := Population{200, 400, 800, 1600, 3200}
	got := Mutate(rng, orig.Clone(), 1.0, 0.7, 1.5)
	for i, w := range got {
		low := int(math.Round(float64(orig[i]) * 0.7))
		high := int(math.Round(float64(orig[i]) * 1.5))
		if w < low || w > high {
			t.Fatalf("pup %d: %d outside [%d, %d]", i, w, low, high)
		}
	}
}

func TestMutateRateApproximatesOdds(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	pups := make(Population, 10000)
	for i := range pups {
		pups[i] = 1000
	}
	Mutate(rng, pups, 0.15, 2.0, 2.0)
	changed := 0
	for _, w := range pups {
		if w != 1000 {
			changed++
		}
	}
	if changed < 1300 || changed > 1700 {
		t.Fatalf("expected about 1500 mutations, got %d", changed)
	}
}

func TestMutateModifiesInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	pups := Population{10, 20}
	got := Mutate(rng, pups, 1.0, 3.0, 3.0)
	if &got[0] != &pups[0] || pups[0] != 30 {
		t.Fatalf("expected in-place mutation, got %v / %v", got, pups)
	}
}
