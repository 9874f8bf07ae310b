package trinary

import (
	"fmt"
	"math/rand/v2"

	"github.com/PatrickRWells/cellular-automata/pkg/core"
)

// RandomConfiguration returns a configuration of the given length with
// cells drawn uniformly from the trinary alphabet. Negative lengths fail
// with ErrInvalidLength; length zero yields an empty configuration. The
// generator exists for tests and tooling — the engine itself consumes
// whatever configuration it is handed.
func RandomConfiguration(r *rand.Rand, length int) (Configuration, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	cfg := make(Configuration, length)
	core.FillUniform(r, cfg, NumStates)
	return cfg, nil
}
