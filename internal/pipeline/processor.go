package pipeline

import (
	"context"

	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/an-ivanov/nansat/internal/recipe"
	"github.com/an-ivanov/nansat/pixfunc"
	"golang.org/x/sync/errgroup"
)

// deriveBand computes one derived band tile by tile. Sources of differing
// types are promoted to a common type first; every tile writes straight into
// the output band through a buffer anchored at the tile origin.
func (p *Pipeline) deriveBand(ctx context.Context, db recipe.DerivedBand, srcs []*raster.Band,
	width, height int, tiles []Tile) (*raster.Band, error) {

	types := make([]pixfunc.DataType, len(srcs))
	for k, b := range srcs {
		types[k] = b.Type
	}
	srcType := raster.Promote(types...)
	conv := make([]*raster.Band, len(srcs))
	for k, b := range srcs {
		if b.Type != srcType {
			p.logf("convert: %s to %s", b, srcType)
			b = b.Convert(srcType)
		}
		conv[k] = b
	}

	dst := raster.NewBand(db.Name, db.OutputType(), width, height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for _, tl := range tiles {
		tl := tl
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return processTile(db.Func, conv, srcType, tl, dst)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}

// processTile applies fn to one tile.
func processTile(fn string, srcs []*raster.Band, srcType pixfunc.DataType, tl Tile, dst *raster.Band) error {
	packed := make([][]byte, len(srcs))
	for k, b := range srcs {
		packed[k] = tileData(b, tl)
	}
	return pixfunc.Apply(fn, packed, srcType, tl.W, tl.H, dst.Buffer(tl.X0, tl.Y0))
}

// tileData returns the packed samples of tl in b. Full-width tiles are
// contiguous and returned without copying.
func tileData(b *raster.Band, tl Tile) []byte {
	if tl.X0 == 0 && tl.W == b.Width {
		size := b.Type.Size()
		start := tl.Y0 * b.Width * size
		return b.Data[start : start+tl.H*b.Width*size]
	}
	return b.Tile(tl.X0, tl.Y0, tl.W, tl.H)
}
