// Package pipeline computes the derived bands of a recipe over a dataset
// and writes them out.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/an-ivanov/nansat/internal/encoder"
	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/an-ivanov/nansat/internal/recipe"
)

// Config holds all parameters for a pipeline run.
type Config struct {
	Workers   int // concurrent tiles, 0 = NumCPU
	BlockSize int // tile edge in pixels, 0 = DefaultBlockSize
	Verbose   bool

	// Export settings.
	OutputDir  string
	Interleave raster.Interleave // also write all bands to one raw file if set
}

// Pipeline orchestrates derived band computation.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Run computes every derived band of r over ds, in recipe order, and returns
// them as a new dataset with the extent of ds. Derived bands may use bands
// computed before them as sources. The first failing tile cancels the rest
// and its error is returned wrapped with the band name.
func (p *Pipeline) Run(ctx context.Context, r recipe.Recipe, ds *raster.Dataset) (*raster.Dataset, error) {
	if err := recipe.Validate(r, len(ds.Bands)); err != nil {
		return nil, fmt.Errorf("recipe %s: %w", r.Name, err)
	}

	tiles := Tiles(ds.Width, ds.Height, p.cfg.BlockSize)
	p.logf("recipe %s: %d bands, %dx%d, %d tiles of %d, %d workers",
		r.Name, len(r.Bands), ds.Width, ds.Height, len(tiles), p.cfg.BlockSize, p.cfg.Workers)

	out := &raster.Dataset{Width: ds.Width, Height: ds.Height}
	for i, db := range r.Bands {
		srcs, err := sources(r, i, ds, out)
		if err != nil {
			return nil, fmt.Errorf("band %s: %w", db.Name, err)
		}

		p.logf("processing: %s = %s(%v)", db.Name, db.Func, db.Sources)
		band, err := p.deriveBand(ctx, db, srcs, ds.Width, ds.Height, tiles)
		if err != nil {
			return nil, fmt.Errorf("band %s: %w", db.Name, err)
		}
		if err := out.Add(band); err != nil {
			return nil, err
		}
		p.logf("done: %s", band)
	}
	return out, nil
}

// sources resolves the source bands of derived band i.
func sources(r recipe.Recipe, i int, in, out *raster.Dataset) ([]*raster.Band, error) {
	refs, err := r.Resolve(i)
	if err != nil {
		return nil, err
	}
	srcs := make([]*raster.Band, len(refs))
	for k, ref := range refs {
		if ref.Derived >= 0 {
			srcs[k] = out.Bands[ref.Derived]
			continue
		}
		if srcs[k], err = in.Band(ref.Input); err != nil {
			return nil, err
		}
	}
	return srcs, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[nansat] "+format+"\n", args...)
	}
}
