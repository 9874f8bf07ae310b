package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

// Palette assigns one color per cell state, indexed by state value.
type Palette []color.NRGBA

// Built-in palette names.
const (
	// PaletteGreys shades states light to dark, matching the classic
	// greyscale spacetime diagrams. It is the default.
	PaletteGreys = "greys"
	// PaletteFire colors the quiescent state near-black and active states
	// in lava tones.
	PaletteFire = "fire"
	// PaletteTerrain uses dirt, grass and tree tones.
	PaletteTerrain = "terrain"
)

var palettes = map[string]Palette{
	PaletteGreys: {
		{R: 255, G: 255, B: 255, A: 255},
		{R: 150, G: 150, B: 150, A: 255},
		{R: 20, G: 20, B: 20, A: 255},
	},
	PaletteFire: {
		{R: 12, G: 10, B: 18, A: 255},
		{R: 255, G: 90, B: 40, A: 255},
		{R: 255, G: 200, B: 60, A: 255},
	},
	PaletteTerrain: {
		{R: 70, G: 52, B: 32, A: 255},
		{R: 70, G: 160, B: 80, A: 255},
		{R: 40, G: 100, B: 55, A: 255},
	},
}

// Register adds a palette under the provided name. Palettes must carry
// exactly one color per cell state. Registering an existing name replaces
// it. Not safe for concurrent use with Lookup.
func Register(name string, p Palette) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPalette)
	}
	if len(p) != trinary.NumStates {
		return fmt.Errorf("%w: got %d colors, want %d", ErrInvalidPalette, len(p), trinary.NumStates)
	}
	cp := make(Palette, len(p))
	copy(cp, p)
	palettes[name] = cp
	return nil
}

// Lookup returns the palette registered under name. Unknown names fail
// with ErrUnknownPalette; there is no silent fallback.
func Lookup(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p, nil
}

// Names lists the registered palette names in sorted order.
func Names() []string {
	out := make([]string, 0, len(palettes))
	for name := range palettes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
