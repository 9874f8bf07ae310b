package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PatrickRWells/cellular-automata/internal/config"
	"github.com/PatrickRWells/cellular-automata/internal/render"
	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

var (
	renderConfigPath string
	renderRule       int
	renderWidth      int
	renderSteps      int
	renderSeed       int64
	renderInitial    string
	renderOut        string
	renderPalette    string
	renderCellSize   int
	renderOrigin     string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Evolve one rule and write its space-time diagram as a PNG",
		RunE:  runRender,
	}
)

func init() {
	def := config.Default()
	fs := renderCmd.Flags()
	fs.StringVar(&renderConfigPath, "config", "", "YAML run preset; explicit flags override file values")
	fs.IntVar(&renderRule, "rule", def.Rule, "rule number in [0, 19682]")
	fs.IntVar(&renderWidth, "width", def.Width, "lattice width in cells")
	fs.IntVar(&renderSteps, "steps", def.Steps, "number of update steps")
	fs.Int64Var(&renderSeed, "seed", def.Seed, "seed for random initial conditions")
	fs.StringVar(&renderInitial, "initial", def.Initial, `initial condition: "random", "single", or a literal trinary string`)
	fs.StringVar(&renderOut, "out", def.Out, "output PNG path")
	fs.StringVar(&renderPalette, "palette", def.Render.Palette, "palette name: "+paletteNames())
	fs.IntVar(&renderCellSize, "cell-size", def.Render.CellSize, "square pixel size of one cell")
	fs.StringVar(&renderOrigin, "origin", def.Render.Origin, `diagram origin: "lower" or "upper"`)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	initial, err := cfg.BuildInitial()
	if err != nil {
		return err
	}
	auto, err := trinary.NewWithRule(cfg.Rule)
	if err != nil {
		return err
	}
	field, err := auto.Run(initial, cfg.Steps)
	if err != nil {
		return err
	}
	img, err := render.Diagram(field, render.Options{
		CellSize: cfg.Render.CellSize,
		Palette:  cfg.Render.Palette,
		Origin:   render.Origin(cfg.Render.Origin),
	})
	if err != nil {
		return err
	}
	if err := render.WritePNG(cfg.Out, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s: rule %d (%s), %d cells x %d rows\n",
		cfg.Out, auto.Rule(), auto.Digits(), field.Width(), len(field))
	return nil
}

// resolveRunConfig layers the preset file (when given) over the defaults
// and explicitly set flags over both.
func resolveRunConfig(cmd *cobra.Command) (config.Run, error) {
	cfg := config.Default()
	if renderConfigPath != "" {
		loaded, err := config.Load(renderConfigPath)
		if err != nil {
			return config.Run{}, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("rule") {
		cfg.Rule = renderRule
	}
	if fs.Changed("width") {
		cfg.Width = renderWidth
	}
	if fs.Changed("steps") {
		cfg.Steps = renderSteps
	}
	if fs.Changed("seed") {
		cfg.Seed = renderSeed
	}
	if fs.Changed("initial") {
		cfg.Initial = renderInitial
	}
	if fs.Changed("out") {
		cfg.Out = renderOut
	}
	if fs.Changed("palette") {
		cfg.Render.Palette = renderPalette
	}
	if fs.Changed("cell-size") {
		cfg.Render.CellSize = renderCellSize
	}
	if fs.Changed("origin") {
		cfg.Render.Origin = renderOrigin
	}

	if err := cfg.Validate(); err != nil {
		return config.Run{}, err
	}
	return cfg, nil
}

func paletteNames() string {
	return strings.Join(render.Names(), ", ")
}
