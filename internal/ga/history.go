package ga

// History records the mean and maximum weight after every generation.
// Entry i belongs to generation i+1.
type History struct {
	Mean []float64
	Max  []float64
}

// Len returns the number of recorded generations
func (h History) Len() int {
	return len(h.Mean)
}

func (h *History) record(mean float64, max int) {
	h.Mean = append(h.Mean, mean)
	h.Max = append(h.Max, float64(max))
}

// Last returns the most recent entry; ok is false when nothing is recorded.
func (h History) Last() (mean, max float64, ok bool) {
	if len(h.Mean) == 0 {
		return 0, 0, false
	}
	return h.Mean[len(h.Mean)-1], h.Max[len(h.Max)-1], true
}

// Clone returns a deep copy
func (h History) Clone() History {
	return History{
		Mean: append([]float64(nil), h.Mean...),
		Max:  append([]float64(nil), h.Max...),
	}
}
