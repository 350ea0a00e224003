package encoder

import (
	"bytes"

	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/disintegration/imaging"
)

// TIFFEncoder writes uncompressed grayscale quicklooks.
type TIFFEncoder struct{}

func (e *TIFFEncoder) Format() string    { return "tiff" }
func (e *TIFFEncoder) Extension() string { return "tif" }
func (e *TIFFEncoder) Available() bool   { return true }
func (e *TIFFEncoder) IsQuicklook() bool { return true }

func (e *TIFFEncoder) Encode(b *raster.Band, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, Quicklook(b, opts.Width), imaging.TIFF); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
