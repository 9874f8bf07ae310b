// Package trinary implements a one-dimensional, three-state cellular
// automaton in the style of Wolfram's elementary automata.
//
// A rule number in [0, 19682] encodes the local update behavior: its nine
// base-3 digits, read least-significant first, give the successor state for
// each (left neighbor, self) pair in canonical order. Evolution runs on a
// circular lattice — the leftmost cell's neighbor wraps to the rightmost
// cell — and yields the full space-time history, one configuration per
// time step with the initial configuration as row zero.
//
// Automaton bundles a rule number with its derived digit string and lookup
// table. ToTrinary, BuildLookupTable and LookupTable.Evolve expose the
// individual stages for callers that want them separately.
package trinary
