package encoder

import "github.com/an-ivanov/nansat/internal/raster"

// RawEncoder writes the band samples unchanged in native byte order.
type RawEncoder struct{}

func (e *RawEncoder) Format() string    { return "raw" }
func (e *RawEncoder) Extension() string { return "raw" }
func (e *RawEncoder) Available() bool   { return true }

func (e *RawEncoder) Encode(b *raster.Band, _ Options) ([]byte, error) {
	return append([]byte(nil), b.Data...), nil
}
