package ga

// Select culls a population down to two mating pools of retain/2 rats each.
//
// The population is sorted ascending and split at len/2: the lower half
// supplies the females and the upper half the males. From each half the
// heaviest retain/2 rats are kept. When a half holds fewer rats than
// requested, the whole half is kept rather than failing. An odd retain
// loses one rat to the integer division.
//
// The input population is not modified.
func Select(pop Population, retain int) (females, males Population) {
	sorted := pop.Sorted()
	mid := len(sorted) / 2
	perSex := retain / 2

	females = lastN(sorted[:mid], perSex)
	males = lastN(sorted[mid:], perSex)
	return females, males
}

// lastN returns a copy of the final n elements of half, saturating at len(half).
func lastN(half Population, n int) Population {
	if n <= 0 {
		return Population{}
	}
	if n > len(half) {
		n = len(half)
	}
	return half[len(half)-n:].Clone()
}
