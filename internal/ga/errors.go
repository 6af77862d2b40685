package ga

import "errors"

var (
	// ErrInvalidDistribution reports triangular bounds that do not satisfy min <= mode <= max.
	ErrInvalidDistribution = errors.New("invalid weight distribution")
	// ErrEmptyPopulation reports a statistic or generation step over zero rats.
	ErrEmptyPopulation = errors.New("empty population")
	// ErrInvalidConfiguration reports simulation parameters outside their allowed range.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
