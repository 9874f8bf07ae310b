package trinary

import "fmt"

// Evolve applies the lookup table to a circular lattice for the requested
// number of steps and returns the full space-time history. Cell i's
// neighborhood is (current[(i-1+L) mod L], current[i]), so the leftmost
// cell consults the rightmost one. Row 0 of the result is a copy of the
// initial configuration; the caller's slice is never written to, aliased
// or retained. A step count of zero yields a one-row field.
func (t *LookupTable) Evolve(initial Configuration, steps int) (SpacetimeField, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStepCount, steps)
	}
	if len(initial) == 0 {
		return nil, ErrEmptyConfiguration
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	length := len(initial)
	field := make(SpacetimeField, 0, steps+1)
	current := initial.Clone()
	field = append(field, current)

	for step := 0; step < steps; step++ {
		next := make(Configuration, length)
		for i := 0; i < length; i++ {
			left := current[(i-1+length)%length]
			next[i] = t.Output(Neighborhood{Left: left, Self: current[i]})
		}
		field = append(field, next)
		current = next
	}
	return field, nil
}
