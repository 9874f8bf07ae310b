package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

// Origin selects where time step zero is drawn.
type Origin string

const (
	// OriginLower draws time step zero at the bottom, later steps above it.
	OriginLower Origin = "lower"
	// OriginUpper draws time step zero at the top, later steps below it.
	OriginUpper Origin = "upper"
)

// Options control how a space-time field is turned into an image.
type Options struct {
	// CellSize is the square pixel size of one cell. Values below 1 are
	// treated as 1.
	CellSize int
	// Palette names the registered palette used to color states. Empty
	// selects PaletteGreys.
	Palette string
	// Origin places time step zero at the bottom or the top. Empty selects
	// OriginLower.
	Origin Origin
}

// DefaultOptions returns the standard diagram options.
func DefaultOptions() Options {
	return Options{CellSize: 4, Palette: PaletteGreys, Origin: OriginLower}
}

// Diagram renders a space-time field into an image: row t, cell i becomes
// the square block at time t, position i, colored by the palette and
// scaled up with nearest-neighbor interpolation so cell edges stay crisp.
func Diagram(field trinary.SpacetimeField, opts Options) (*image.NRGBA, error) {
	width := field.Width()
	if len(field) == 0 || width == 0 {
		return nil, ErrEmptyField
	}
	for t, row := range field {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedField, t, len(row), width)
		}
	}

	if opts.Palette == "" {
		opts.Palette = PaletteGreys
	}
	pal, err := Lookup(opts.Palette)
	if err != nil {
		return nil, err
	}
	switch opts.Origin {
	case OriginLower, OriginUpper:
	case "":
		opts.Origin = OriginLower
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrigin, opts.Origin)
	}
	if opts.CellSize < 1 {
		opts.CellSize = 1
	}

	rows := len(field)
	base := image.NewNRGBA(image.Rect(0, 0, width, rows))
	for t, row := range field {
		y := t
		if opts.Origin == OriginLower {
			y = rows - 1 - t
		}
		paintRow(base, y, row, pal)
	}

	if opts.CellSize == 1 {
		return base, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width*opts.CellSize, rows*opts.CellSize))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// WritePNG encodes the image to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
