package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/an-ivanov/nansat/internal/encoder"
	"github.com/an-ivanov/nansat/internal/hasher"
	"github.com/an-ivanov/nansat/internal/manifest"
	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/an-ivanov/nansat/internal/recipe"
	"golang.org/x/sync/errgroup"
)

// Export writes every band of out to Config.OutputDir in the formats of the
// recipe quicklook plus raw, and returns the run manifest. Bands are encoded
// concurrently. Output names are content addressed:
// <band>.<w>.<h>.<hash8>.<ext>.
func (p *Pipeline) Export(ctx context.Context, out *raster.Dataset, r recipe.Recipe, inputs []manifest.Input) (*manifest.Manifest, error) {
	if len(out.Bands) != len(r.Bands) {
		return nil, fmt.Errorf("recipe %s has %d bands, dataset has %d", r.Name, len(r.Bands), len(out.Bands))
	}
	for _, b := range out.Bands {
		if filepath.Base(b.Name) != b.Name || b.Name == ".." {
			return nil, fmt.Errorf("band %q: name is not a plain file name", b.Name)
		}
	}
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	p.logf("%s", p.registry.String())

	formats := p.registry.ResolveFormats(r.Quicklook.Formats)
	results := make([]manifest.Band, len(out.Bands))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i, b := range out.Bands {
		i, b := i, b
		db := r.Bands[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mb, err := p.writeBand(b, db, formats, r.Quicklook)
			if err != nil {
				return fmt.Errorf("band %s: %w", b.Name, err)
			}
			results[i] = mb
			p.logf("done: %s (%d outputs)", b.Name, len(mb.Outputs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := manifest.New(r.Name)
	m.Inputs = inputs
	m.BuildInfo = &manifest.BuildInfo{
		Workers:   p.cfg.Workers,
		BlockSize: p.cfg.BlockSize,
		Tiles:     len(Tiles(out.Width, out.Height, p.cfg.BlockSize)),
	}
	for i, b := range out.Bands {
		m.Bands[b.Name] = results[i]
	}

	if p.cfg.Interleave != "" && len(out.Bands) > 0 {
		stack, err := p.writeStack(out, r.Name)
		if err != nil {
			return nil, err
		}
		m.Stack = &stack
	}

	m.ComputeStats()
	return m, nil
}

// writeBand encodes one band in every format.
func (p *Pipeline) writeBand(b *raster.Band, db recipe.DerivedBand, formats []string, ql recipe.Quicklook) (manifest.Band, error) {
	mb := manifest.Band{
		Func:     db.Func,
		Sources:  db.Sources,
		DataType: b.Type.String(),
		Width:    b.Width,
		Height:   b.Height,
		Metadata: db.Metadata,
		Stats:    b.Stats(),
	}

	for _, format := range formats {
		enc := p.registry.Get(format)
		if enc == nil {
			continue
		}
		widths := []int{b.Width}
		if encoder.IsQuicklook(enc) {
			widths = ql.EffectiveWidths(b.Width)
		}
		for _, w := range widths {
			o, err := p.writeOutput(enc, b, encoder.Options{Width: w, Quality: ql.EffectiveQuality()})
			if err != nil {
				if encoder.IsQuicklook(enc) {
					p.logf("warn: %s@%d as %s: %v", b.Name, w, format, err)
					continue
				}
				return mb, err
			}
			mb.Outputs = append(mb.Outputs, o)
		}
	}
	return mb, nil
}

func (p *Pipeline) writeOutput(enc encoder.Encoder, b *raster.Band, opts encoder.Options) (manifest.Output, error) {
	data, err := enc.Encode(b, opts)
	if err != nil {
		return manifest.Output{}, fmt.Errorf("encode %s: %w", enc.Format(), err)
	}

	w, h := b.Width, b.Height
	if encoder.IsQuicklook(enc) {
		w, h = encoder.QuicklookSize(b, opts.Width)
	}
	contentHash := hasher.ContentHash(data, 16)
	name := fmt.Sprintf("%s.%d.%d.%s.%s", b.Name, w, h, contentHash[:8], enc.Extension())
	path := filepath.Join(p.cfg.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return manifest.Output{}, fmt.Errorf("write %s: %w", name, err)
	}
	if !encoder.IsQuicklook(enc) {
		hdr := raster.Header{Width: w, Height: h, DataType: b.Type, Bands: []string{b.Name}}
		if err := raster.WriteHeader(path, hdr); err != nil {
			return manifest.Output{}, fmt.Errorf("write %s header: %w", name, err)
		}
	}

	return manifest.Output{
		Format: enc.Format(),
		Width:  w,
		Height: h,
		Size:   int64(len(data)),
		Hash:   contentHash,
		Path:   filepath.ToSlash(name),
	}, nil
}

// writeStack writes all bands into a single raw file.
func (p *Pipeline) writeStack(out *raster.Dataset, name string) (manifest.Output, error) {
	fileName := fmt.Sprintf("%s.%s.raw", name, p.cfg.Interleave)
	path := filepath.Join(p.cfg.OutputDir, fileName)
	if _, err := raster.WriteRaw(path, out.Bands, p.cfg.Interleave); err != nil {
		return manifest.Output{}, fmt.Errorf("write %s: %w", fileName, err)
	}
	hash, size, err := hasher.FileHash(path, 16)
	if err != nil {
		return manifest.Output{}, err
	}
	p.logf("stack: %s (%s)", fileName, p.cfg.Interleave)
	return manifest.Output{
		Format: "raw",
		Width:  out.Width,
		Height: out.Height,
		Size:   size,
		Hash:   hash,
		Path:   fileName,
	}, nil
}
