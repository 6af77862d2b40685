package ga

import "fmt"

// Config holds the immutable parameters of one simulation run.
type Config struct {
	PopulationSize        int
	InitialMinWeight      int
	InitialMaxWeight      int
	InitialModeWeight     int
	MutationProbability   float64
	MutationMultiplierMin float64
	MutationMultiplierMax float64
	LitterSize            int
	RetainCount           int
	Goal                  float64
	LittersPerYear        int
	GenerationLimit       int // 0 means no limit
}

// DefaultConfig returns the classic super rat parameters: twenty rats of
// 200-600g bred toward a 50kg goal.
func DefaultConfig() Config {
	return Config{
		PopulationSize:        20,
		InitialMinWeight:      200,
		InitialMaxWeight:      600,
		InitialModeWeight:     300,
		MutationProbability:   0.15,
		MutationMultiplierMin: 0.7,
		MutationMultiplierMax: 1.5,
		LitterSize:            12,
		RetainCount:           20,
		Goal:                  50000,
		LittersPerYear:        12,
		GenerationLimit:       400,
	}
}

// Validate checks every parameter and reports the first violation.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 2:
		return invalid("population_size %d must be at least 2", c.PopulationSize)
	case c.PopulationSize%2 != 0:
		return invalid("population_size %d must be even", c.PopulationSize)
	case c.InitialMinWeight < 0:
		return invalid("initial_min_weight %d must not be negative", c.InitialMinWeight)
	case c.InitialMinWeight > c.InitialModeWeight || c.InitialModeWeight > c.InitialMaxWeight:
		return invalid("initial weights need min <= mode <= max, got %d/%d/%d",
			c.InitialMinWeight, c.InitialModeWeight, c.InitialMaxWeight)
	case c.MutationProbability < 0 || c.MutationProbability > 1:
		return invalid("mutation_probability %v must be within [0, 1]", c.MutationProbability)
	case c.MutationMultiplierMin < 0:
		return invalid("mutation_multiplier_min %v must not be negative", c.MutationMultiplierMin)
	case c.MutationMultiplierMin > c.MutationMultiplierMax:
		return invalid("mutation multiplier range [%v, %v] is inverted", c.MutationMultiplierMin, c.MutationMultiplierMax)
	case c.LitterSize < 1:
		return invalid("litter_size %d must be at least 1", c.LitterSize)
	case c.RetainCount < 2:
		return invalid("retain_count %d must be at least 2", c.RetainCount)
	case c.Goal <= 0:
		return invalid("goal %v must be positive", c.Goal)
	case c.LittersPerYear < 1:
		return invalid("litters_per_year %d must be at least 1", c.LittersPerYear)
	case c.GenerationLimit < 0:
		return invalid("generation_limit %d must not be negative", c.GenerationLimit)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}
