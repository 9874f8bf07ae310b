package trinary

import "fmt"

// Neighborhood is the ordered (left neighbor, self) pair consulted when
// computing a cell's next state.
type Neighborhood struct {
	Left State
	Self State
}

// neighborhoods fixes the canonical enumeration order. Wolfram numbering
// pairs this order with the rule digits read least-significant first, so
// the order itself is part of the encoding and must never change.
var neighborhoods = [NumNeighborhoods]Neighborhood{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{2, 0}, {2, 1}, {2, 2},
}

// Neighborhoods returns the nine possible neighborhoods in canonical order.
func Neighborhoods() []Neighborhood {
	out := make([]Neighborhood, NumNeighborhoods)
	copy(out, neighborhoods[:])
	return out
}

func (n Neighborhood) index() int { return int(n.Left)*NumStates + int(n.Self) }

// LookupTable maps every neighborhood to the state it produces. Tables are
// immutable once built; equal digit strings always build equal tables.
type LookupTable struct {
	out [NumNeighborhoods]State
}

// BuildLookupTable derives a lookup table from a nine-digit trinary string:
// digit k counted from the least-significant end governs the k-th canonical
// neighborhood, so "rule mod 3" governs (0,0) and the most-significant
// digit governs (2,2). Inputs of the wrong length or alphabet fail with
// ErrMalformedDigits.
func BuildLookupTable(digits string) (*LookupTable, error) {
	if len(digits) != NumNeighborhoods {
		return nil, fmt.Errorf("%w: want %d digits, got %d", ErrMalformedDigits, NumNeighborhoods, len(digits))
	}
	t := &LookupTable{}
	for k, nb := range neighborhoods {
		ch := digits[NumNeighborhoods-1-k]
		if ch < '0' || ch > '2' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrMalformedDigits, ch, NumNeighborhoods-1-k)
		}
		t.out[nb.index()] = State(ch - '0')
	}
	return t, nil
}

// Output returns the successor state for the neighborhood. Both states must
// lie in the trinary alphabet.
func (t *LookupTable) Output(n Neighborhood) State {
	return t.out[n.index()]
}
