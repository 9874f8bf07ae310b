package trinary

// Automaton owns a rule number together with the trinary digit string and
// lookup table derived from it. Derived state is rebuilt atomically on
// every rule change, never lazily. Instances are not safe for concurrent
// SetRule calls; concurrent Run calls are fine while the rule is stable.
type Automaton struct {
	rule   int
	digits string
	table  *LookupTable
}

// New returns an automaton configured with DefaultRule. Construction
// cannot fail: rule 0 is always encodable.
func New() *Automaton {
	a := &Automaton{}
	_ = a.SetRule(DefaultRule)
	return a
}

// NewWithRule returns an automaton configured with the given rule number.
func NewWithRule(rule int) (*Automaton, error) {
	a := &Automaton{}
	if err := a.SetRule(rule); err != nil {
		return nil, err
	}
	return a, nil
}

// SetRule installs a new rule, rebuilding the digit string and lookup
// table. Validation happens before any field is touched: on failure the
// previous rule and its derived state remain installed.
func (a *Automaton) SetRule(rule int) error {
	digits, err := ToTrinary(rule)
	if err != nil {
		return err
	}
	table, err := BuildLookupTable(digits)
	if err != nil {
		return err
	}
	a.rule = rule
	a.digits = digits
	a.table = table
	return nil
}

// Rule returns the current rule number.
func (a *Automaton) Rule() int { return a.rule }

// Digits returns the current rule number in base 3, most-significant
// digit first.
func (a *Automaton) Digits() string { return a.digits }

// Table returns the lookup table derived from the current rule.
func (a *Automaton) Table() *LookupTable { return a.table }

// Run evolves the initial configuration under the current rule for the
// requested number of time steps.
func (a *Automaton) Run(initial Configuration, steps int) (SpacetimeField, error) {
	return a.table.Evolve(initial, steps)
}
