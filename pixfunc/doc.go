// Package pixfunc implements derived-band pixel functions for raster engines.
//
// A pixel function computes one output band from one or more input bands for
// a rectangular tile. The engine hands over the source tiles as packed byte
// buffers of a single element type, and a destination Buffer describing where
// and in which type each output sample is stored:
//
//	srcs := [][]byte{u, v} // two Float32 tiles, width*height samples each
//	dst := &pixfunc.Buffer{
//	    Data:       out,
//	    Type:       pixfunc.Float32,
//	    PixelSpace: 4,
//	    LineSpace:  4 * width,
//	}
//	err := pixfunc.Apply("UVToMagnitude", srcs, pixfunc.Float32, width, height, dst)
//
// All arithmetic happens in float64 (or a pair of float64 for complex values).
// Sources are always read as packed arrays; only the destination honours
// PixelSpace and LineSpace, which may describe interleaved or padded layouts.
//
// A function fails with ErrArity when it receives the wrong number of sources
// and with ErrUnsupportedType when it cannot handle complex input. Both are
// reported before anything is written. Numeric degeneracies (division by zero,
// log of zero, asin out of domain) are not errors; they show up as NaN or Inf
// in the output.
//
// The package holds no mutable state: functions may be called concurrently as
// long as the buffers of different calls do not overlap.
package pixfunc
