package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/PatrickRWells/cellular-automata/internal/render"
	"github.com/PatrickRWells/cellular-automata/pkg/core"
	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

// validate is the package validator instance, extended in init with the
// initial-condition rule.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("initial", validInitial)
}

// Render controls diagram appearance.
type Render struct {
	Palette  string `yaml:"palette" validate:"required"`
	CellSize int    `yaml:"cell_size" validate:"gte=1,lte=64"`
	Origin   string `yaml:"origin" validate:"oneof=lower upper"`
}

// Run describes one automaton run end to end: rule, lattice, initial
// condition and output rendering. A literal trinary string in Initial
// fixes the lattice width regardless of Width.
type Run struct {
	Rule    int    `yaml:"rule" validate:"gte=0,lte=19682"`
	Width   int    `yaml:"width" validate:"gte=1"`
	Steps   int    `yaml:"steps" validate:"gte=0"`
	Seed    int64  `yaml:"seed"`
	Initial string `yaml:"initial" validate:"initial"`
	Out     string `yaml:"out" validate:"required"`
	Render  Render `yaml:"render"`
}

// Default returns the standard run preset.
func Default() Run {
	return Run{
		Rule:    1110,
		Width:   301,
		Steps:   300,
		Seed:    1337,
		Initial: "single",
		Out:     "tca.png",
		Render: Render{
			Palette:  render.PaletteGreys,
			CellSize: 3,
			Origin:   string(render.OriginLower),
		},
	}
}

// Load reads a run preset from a YAML file, layering it over Default and
// validating the result.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Run{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Run{}, err
	}
	return cfg, nil
}

// WriteDefault writes the default preset to path, creating parent
// directories as needed. Existing files are not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks every preset constraint, including that the named
// palette is actually registered.
func (c Run) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := render.Lookup(c.Render.Palette); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BuildInitial materializes the preset's initial condition: "random" draws
// Width cells from the seeded generator, "single" seeds one centered cell,
// and anything else is parsed as a literal trinary string.
func (c Run) BuildInitial() (trinary.Configuration, error) {
	switch c.Initial {
	case "random":
		return trinary.RandomConfiguration(core.NewRNG(c.Seed).Source(), c.Width)
	case "single":
		return trinary.SingleSeed(c.Width)
	default:
		return trinary.ParseConfiguration(c.Initial)
	}
}

// validInitial accepts "random", "single", or a non-empty literal trinary
// string.
func validInitial(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	switch v {
	case "random", "single":
		return true
	case "":
		return false
	}
	_, err := trinary.ParseConfiguration(v)
	return err == nil
}
