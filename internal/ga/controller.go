package ga

import (
	"fmt"
	"math/rand"
)

// State describes where the controller is in its generation cycle.
type State int

const (
	StateReady       State = iota // idle, holding the current population
	StateAdvancing                // inside Advance
	StateGoalReached              // the heaviest rat has reached the goal
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateAdvancing:
		return "advancing"
	case StateGoalReached:
		return "goal_reached"
	default:
		return "unknown"
	}
}

// Controller owns the population and history of one simulation run and
// advances it one generation at a time. It is not safe for concurrent use;
// callers serialise Advance, Reset and the pause controls.
type Controller struct {
	cfg Config
	rng *rand.Rand

	pop         Population
	generation  int
	history     History
	goalReached bool
	paused      bool
	state       State
}

// Snapshot is a read-only view of the controller for display layers.
type Snapshot struct {
	Generation  int
	Population  Population
	Mean        float64
	Max         int
	Fitness     float64
	Years       float64
	GoalReached bool
	Paused      bool
	State       State
	History     History
}

// NewController validates cfg and breeds the initial population from rng.
func NewController(cfg Config, rng *rand.Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfiguration)
	}
	c := &Controller{cfg: cfg, rng: rng}
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize draws the starting population described by cfg.
func Initialize(cfg Config, rng *rand.Rand) (Population, error) {
	return Populate(rng, cfg.PopulationSize, cfg.InitialMinWeight, cfg.InitialMaxWeight, cfg.InitialModeWeight)
}

// Reset discards the current run and starts over from generation 0.
func (c *Controller) Reset() error {
	pop, err := Initialize(c.cfg, c.rng)
	if err != nil {
		return err
	}
	c.pop = pop
	c.generation = 0
	c.history = History{}
	c.goalReached = false
	c.paused = false
	c.state = StateReady
	return nil
}

// Advance runs one generation: select, breed, mutate and recombine.
// It returns false without touching any state while the controller is
// paused. On error the previous generation is left intact.
func (c *Controller) Advance() (bool, error) {
	if c.paused {
		return false, nil
	}
	if len(c.pop) == 0 {
		return false, fmt.Errorf("advance generation %d: %w", c.generation, ErrEmptyPopulation)
	}

	prev := c.state
	c.state = StateAdvancing

	females, males := Select(c.pop, c.cfg.RetainCount)
	pups := Breed(c.rng, males, females, c.cfg.LitterSize)
	pups = Mutate(c.rng, pups, c.cfg.MutationProbability, c.cfg.MutationMultiplierMin, c.cfg.MutationMultiplierMax)

	next := make(Population, 0, len(females)+len(males)+len(pups))
	next = append(next, females...)
	next = append(next, males...)
	next = append(next, pups...)

	mean, err := next.Mean()
	if err != nil {
		c.state = prev
		return false, fmt.Errorf("advance generation %d: %w", c.generation, err)
	}
	max, _ := next.Max()

	c.pop = next
	c.generation++
	c.history.record(mean, max)
	c.goalReached = float64(max) >= c.cfg.Goal
	if c.goalReached {
		c.state = StateGoalReached
	} else {
		c.state = StateReady
	}
	return true, nil
}

// Pause stops Advance from changing the population until Resume.
func (c *Controller) Pause() { c.paused = true }

// Resume re-enables Advance.
func (c *Controller) Resume() { c.paused = false }

// TogglePause flips the pause gate and returns the new value.
func (c *Controller) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether Advance is currently suppressed.
func (c *Controller) Paused() bool { return c.paused }

// Population returns a copy of the current generation's weights.
func (c *Controller) Population() Population { return c.pop.Clone() }

// Generation returns the number of completed generations since the last reset.
func (c *Controller) Generation() int { return c.generation }

// History returns a copy of the recorded mean and maximum series.
func (c *Controller) History() History { return c.history.Clone() }

// GoalReached reports whether the latest generation's heaviest rat met the goal.
func (c *Controller) GoalReached() bool { return c.goalReached }

// State returns the controller state
func (c *Controller) State() State { return c.state }

// Config returns the run parameters
func (c *Controller) Config() Config { return c.cfg }

// Mean returns the current mean weight
func (c *Controller) Mean() (float64, error) { return c.pop.Mean() }

// Max returns the current heaviest weight
func (c *Controller) Max() (int, error) { return c.pop.Max() }

// Fitness returns mean weight divided by the goal.
func (c *Controller) Fitness() (float64, error) { return Fitness(c.pop, c.cfg.Goal) }

// Years converts elapsed generations into breeding years.
func (c *Controller) Years() float64 {
	return float64(c.generation) / float64(c.cfg.LittersPerYear)
}

// Snapshot collects the current state for rendering or logging.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Generation:  c.generation,
		Population:  c.pop.Clone(),
		Years:       c.Years(),
		GoalReached: c.goalReached,
		Paused:      c.paused,
		State:       c.state,
		History:     c.history.Clone(),
	}
	s.Mean, _ = c.pop.Mean()
	s.Max, _ = c.pop.Max()
	s.Fitness, _ = c.Fitness()
	return s
}
