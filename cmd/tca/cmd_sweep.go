package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/PatrickRWells/cellular-automata/internal/config"
	"github.com/PatrickRWells/cellular-automata/internal/render"
	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

var (
	sweepRules    string
	sweepWidth    int
	sweepSteps    int
	sweepSeed     int64
	sweepInitial  string
	sweepOutDir   string
	sweepPalette  string
	sweepCellSize int
	sweepWorkers  int

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Render a gallery of rules in parallel and write a manifest",
		RunE:  runSweep,
	}
)

func init() {
	def := config.Default()
	fs := sweepCmd.Flags()
	fs.StringVar(&sweepRules, "rules", "", `rules to render: comma-separated numbers and ranges, e.g. "0,1110,4000..4010"`)
	fs.IntVar(&sweepWidth, "width", def.Width, "lattice width in cells")
	fs.IntVar(&sweepSteps, "steps", def.Steps, "number of update steps")
	fs.Int64Var(&sweepSeed, "seed", def.Seed, "seed for random initial conditions")
	fs.StringVar(&sweepInitial, "initial", "random", `initial condition: "random", "single", or a literal trinary string`)
	fs.StringVar(&sweepOutDir, "out-dir", "gallery", "directory for PNGs and the manifest")
	fs.StringVar(&sweepPalette, "palette", def.Render.Palette, "palette name: "+paletteNames())
	fs.IntVar(&sweepCellSize, "cell-size", def.Render.CellSize, "square pixel size of one cell")
	fs.IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "number of concurrent renders")
	_ = sweepCmd.MarkFlagRequired("rules")
	rootCmd.AddCommand(sweepCmd)
}

// sweepManifest records one gallery run. It is written as manifest.yaml
// next to the rendered PNGs.
type sweepManifest struct {
	RunID    string        `yaml:"run_id"`
	Created  time.Time     `yaml:"created"`
	Width    int           `yaml:"width"`
	Steps    int           `yaml:"steps"`
	Seed     int64         `yaml:"seed"`
	Initial  string        `yaml:"initial"`
	Palette  string        `yaml:"palette"`
	CellSize int           `yaml:"cell_size"`
	Results  []sweepResult `yaml:"results"`
}

type sweepResult struct {
	Rule   int    `yaml:"rule"`
	Digits string `yaml:"digits"`
	File   string `yaml:"file"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	rules, err := parseRuleList(sweepRules)
	if err != nil {
		return err
	}

	base := config.Default()
	base.Width = sweepWidth
	base.Steps = sweepSteps
	base.Seed = sweepSeed
	base.Initial = sweepInitial
	base.Render.Palette = sweepPalette
	base.Render.CellSize = sweepCellSize
	if err := base.Validate(); err != nil {
		return err
	}

	// One shared initial configuration keeps the gallery comparable; the
	// engine copies it per run, so sharing across workers is safe.
	initial, err := base.BuildInitial()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(sweepOutDir, 0o755); err != nil {
		return err
	}

	workers := sweepWorkers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	results := make([]sweepResult, len(rules))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for idx, rule := range rules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			auto, err := trinary.NewWithRule(rule)
			if err != nil {
				return fmt.Errorf("rule %d: %w", rule, err)
			}
			field, err := auto.Run(initial, base.Steps)
			if err != nil {
				return fmt.Errorf("rule %d: %w", rule, err)
			}
			img, err := render.Diagram(field, render.Options{
				CellSize: base.Render.CellSize,
				Palette:  base.Render.Palette,
				Origin:   render.Origin(base.Render.Origin),
			})
			if err != nil {
				return fmt.Errorf("rule %d: %w", rule, err)
			}
			name := fmt.Sprintf("rule%05d.png", rule)
			if err := render.WritePNG(filepath.Join(sweepOutDir, name), img); err != nil {
				return fmt.Errorf("rule %d: %w", rule, err)
			}
			results[idx] = sweepResult{Rule: rule, Digits: auto.Digits(), File: name}
			slog.Info("rendered rule", "rule", rule, "digits", auto.Digits(), "file", name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	manifest := sweepManifest{
		RunID:    uuid.NewString(),
		Created:  time.Now().UTC(),
		Width:    len(initial),
		Steps:    base.Steps,
		Seed:     base.Seed,
		Initial:  base.Initial,
		Palette:  base.Render.Palette,
		CellSize: base.Render.CellSize,
		Results:  results,
	}
	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(sweepOutDir, "manifest.yaml"), data, 0o644); err != nil {
		return err
	}

	fmt.Printf("rendered %d rules into %s in %s (run %s)\n",
		len(rules), sweepOutDir, time.Since(start).Round(time.Millisecond), manifest.RunID)
	return nil
}

// parseRuleList expands a comma-separated list of rule numbers and
// inclusive a..b ranges, preserving order and dropping duplicates.
func parseRuleList(spec string) ([]int, error) {
	var rules []int
	seen := make(map[int]bool)
	add := func(r int) error {
		if r < 0 || r > trinary.MaxRuleNumber {
			return fmt.Errorf("rule %d outside [0, %d]", r, trinary.MaxRuleNumber)
		}
		if !seen[r] {
			seen[r] = true
			rules = append(rules, r)
		}
		return nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, ".."); ok {
			a, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("bad rule range %q: %w", part, err)
			}
			b, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("bad rule range %q: %w", part, err)
			}
			if b < a {
				return nil, fmt.Errorf("bad rule range %q: descending", part)
			}
			for r := a; r <= b; r++ {
				if err := add(r); err != nil {
					return nil, err
				}
			}
			continue
		}
		r, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad rule %q: %w", part, err)
		}
		if err := add(r); err != nil {
			return nil, err
		}
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules in %q", spec)
	}
	return rules, nil
}
