package ga

import "fmt"

// Fitness measures how close the population mean is to goal as mean/goal.
// It is informational only: selection ranks by weight, not by fitness.
func Fitness(pop Population, goal float64) (float64, error) {
	if goal <= 0 {
		return 0, fmt.Errorf("%w: goal %v must be positive", ErrInvalidConfiguration, goal)
	}
	mean, err := pop.Mean()
	if err != nil {
		return 0, err
	}
	return mean / goal, nil
}
