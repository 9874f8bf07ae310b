package trinary

import "fmt"

const (
	// NumStates is the size of the cell alphabet.
	NumStates = 3
	// NumNeighborhoods is the number of distinct (left, self) pairs.
	NumNeighborhoods = NumStates * NumStates
	// MaxRuleNumber is the largest encodable rule number, 3^9 - 1.
	MaxRuleNumber = 19682
	// DefaultRule is the rule number installed by New.
	DefaultRule = 0
)

// State is the value of a single lattice cell.
type State uint8

// Valid reports whether the state lies in the trinary alphabet.
func (s State) Valid() bool { return s < NumStates }

// Configuration is the ordered sequence of cell states on the lattice.
type Configuration []State

// Clone returns an independent copy of the configuration.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}

// Validate returns ErrInvalidCellState for the first cell outside the
// trinary alphabet.
func (c Configuration) Validate() error {
	for i, s := range c {
		if !s.Valid() {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidCellState, i, s)
		}
	}
	return nil
}

// String renders the configuration as a digit string, one character per cell.
func (c Configuration) String() string {
	buf := make([]byte, len(c))
	for i, s := range c {
		buf[i] = '0' + byte(s)
	}
	return string(buf)
}

// ParseConfiguration converts a literal digit string such as "0120" into a
// configuration. Characters outside '0'..'2' fail with ErrInvalidCellState.
func ParseConfiguration(s string) (Configuration, error) {
	cfg := make(Configuration, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '2' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCellState, ch, i)
		}
		cfg[i] = State(ch - '0')
	}
	return cfg, nil
}

// SingleSeed returns an all-zero configuration of the given length with one
// state-1 cell at the center.
func SingleSeed(length int) (Configuration, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	cfg := make(Configuration, length)
	cfg[length/2] = 1
	return cfg, nil
}

// SpacetimeField is the evolution history of one run: element 0 is the
// initial configuration and element t the lattice after t update steps.
// All rows share one length.
type SpacetimeField []Configuration

// TimeSteps returns the number of update steps the field records.
func (f SpacetimeField) TimeSteps() int {
	if len(f) == 0 {
		return 0
	}
	return len(f) - 1
}

// Width returns the lattice length shared by every row.
func (f SpacetimeField) Width() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// At returns the state at time step t, lattice position i.
func (f SpacetimeField) At(t, i int) State { return f[t][i] }
