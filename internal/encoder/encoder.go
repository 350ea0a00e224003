// Package encoder turns derived bands into files: raw sample dumps and
// stretched quicklook images.
package encoder

import "github.com/an-ivanov/nansat/internal/raster"

// Encoder encodes a band to a specific format.
type Encoder interface {
	// Format returns the output format name (e.g. "raw", "png", "jpeg").
	Format() string

	// Encode converts the band to bytes.
	Encode(b *raster.Band, opts Options) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}

// Options controls quicklook encoders. Raw output ignores them.
type Options struct {
	Width   int // output width, 0 or >= band width keeps the band size
	Quality int // 1-100 for lossy formats
}

// Quicklooker is implemented by encoders that produce resized preview
// images rather than the band samples themselves.
type Quicklooker interface {
	IsQuicklook() bool
}

// IsQuicklook reports whether enc produces preview images.
func IsQuicklook(enc Encoder) bool {
	q, ok := enc.(Quicklooker)
	return ok && q.IsQuicklook()
}
