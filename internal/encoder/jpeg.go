package encoder

import (
	"bytes"

	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/disintegration/imaging"
)

// DefaultQuality is the JPEG quality used when Options.Quality is unset.
const DefaultQuality = 85

// JPEGEncoder writes 8-bit grayscale quicklooks.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string    { return "jpeg" }
func (e *JPEGEncoder) Extension() string { return "jpeg" }
func (e *JPEGEncoder) Available() bool   { return true }
func (e *JPEGEncoder) IsQuicklook() bool { return true }

func (e *JPEGEncoder) Encode(b *raster.Band, opts Options) ([]byte, error) {
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	err := imaging.Encode(&buf, Quicklook(b, opts.Width), imaging.JPEG, imaging.JPEGQuality(quality))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
