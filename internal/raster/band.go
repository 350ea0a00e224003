// Package raster holds in-memory bands and the datasets they are loaded
// into. Band data is packed row-major, in host byte order, exactly as the
// pixel functions expect their sources.
package raster

import (
	"fmt"

	"github.com/an-ivanov/nansat/pixfunc"
)

// Band is one layer of samples.
type Band struct {
	Name   string
	Type   pixfunc.DataType
	Width  int
	Height int
	Data   []byte
}

// NewBand allocates a zeroed band.
func NewBand(name string, t pixfunc.DataType, width, height int) *Band {
	return &Band{
		Name:   name,
		Type:   t,
		Width:  width,
		Height: height,
		Data:   make([]byte, t.Size()*width*height),
	}
}

// Tile returns a packed copy of the w×h window at (x0, y0).
func (b *Band) Tile(x0, y0, w, h int) []byte {
	size := b.Type.Size()
	out := make([]byte, w*h*size)
	rowLen := w * size
	for y := 0; y < h; y++ {
		start := ((y0+y)*b.Width + x0) * size
		copy(out[y*rowLen:], b.Data[start:start+rowLen])
	}
	return out
}

// Buffer returns a destination aliasing the band's data with its origin at
// (x0, y0). Rows are a full band width apart.
func (b *Band) Buffer(x0, y0 int) *pixfunc.Buffer {
	size := b.Type.Size()
	return &pixfunc.Buffer{
		Data:       b.Data[(y0*b.Width+x0)*size:],
		Type:       b.Type,
		PixelSpace: size,
		LineSpace:  b.Width * size,
	}
}

// At returns the sample at (x, y).
func (b *Band) At(x, y int) (re, im float64) {
	return pixfunc.ReadComplex(b.Data, b.Type, y*b.Width+x)
}

// Convert returns a copy of the band with samples of type t.
func (b *Band) Convert(t pixfunc.DataType) *Band {
	out := NewBand(b.Name, t, b.Width, b.Height)
	pixfunc.CopyWords(b.Data, b.Type, b.Width, b.Height, out.Buffer(0, 0))
	return out
}

func (b *Band) String() string {
	return fmt.Sprintf("%s (%s %dx%d)", b.Name, b.Type, b.Width, b.Height)
}

// Promote returns the type all given types can be converted to without
// losing their complex part: the common type if they all agree, CFloat64
// if any is complex, Float64 otherwise.
func Promote(types ...pixfunc.DataType) pixfunc.DataType {
	if len(types) == 0 {
		return pixfunc.Unknown
	}
	same, anyComplex := true, false
	for _, t := range types {
		same = same && t == types[0]
		anyComplex = anyComplex || t.IsComplex()
	}
	switch {
	case same:
		return types[0]
	case anyComplex:
		return pixfunc.CFloat64
	default:
		return pixfunc.Float64
	}
}
