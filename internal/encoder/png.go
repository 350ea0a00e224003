package encoder

import (
	"bytes"
	"image/png"

	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/disintegration/imaging"
)

// PNGEncoder writes 16-bit grayscale quicklooks, resized or not.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }
func (e *PNGEncoder) Available() bool   { return true }
func (e *PNGEncoder) IsQuicklook() bool { return true }

func (e *PNGEncoder) Encode(b *raster.Band, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	err := imaging.Encode(&buf, Quicklook(b, opts.Width), imaging.PNG,
		imaging.PNGCompressionLevel(png.BestCompression))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
