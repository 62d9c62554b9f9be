package generator

import (
	"fmt"
	"math/rand/v2"
)

// Range is an inclusive integer interval sampled uniformly.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Pick returns a value in [Min, Max].
func (r Range) Pick(rng *rand.Rand) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// Validate implements validation.Validatable.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("min %d is greater than max %d", r.Min, r.Max)
	}
	return nil
}
