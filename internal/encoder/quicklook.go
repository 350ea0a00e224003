package encoder

import (
	"image"
	"image/color"
	"math"

	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/an-ivanov/nansat/pixfunc"
)

// Quicklook renders the real part of b as a grayscale image. Finite samples
// are stretched linearly from the band minimum to maximum onto 1..65535;
// NaN and infinities map to 0. A band with a single finite value renders
// mid-gray. If width is positive and smaller than the band, the image is
// downsampled keeping the aspect ratio. The result is always *image.Gray16.
func Quicklook(b *raster.Band, width int) image.Image {
	s := b.Stats()
	img := image.NewGray16(image.Rect(0, 0, b.Width, b.Height))

	span := s.Max - s.Min
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			v := pixfunc.ReadSample(b.Data, b.Type, y*b.Width+x)
			var g uint16
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				g = 0
			case span == 0:
				g = 0x8000
			default:
				g = 1 + uint16(math.Round((v-s.Min)/span*65534))
			}
			img.SetGray16(x, y, color.Gray16{Y: g})
		}
	}

	if width <= 0 || width >= b.Width {
		return img
	}
	w, h := QuicklookSize(b, width)
	return raster.Resample(img, w, h)
}

// QuicklookSize returns the pixel size of a quicklook of b at width.
func QuicklookSize(b *raster.Band, width int) (int, int) {
	if width <= 0 || width >= b.Width {
		return b.Width, b.Height
	}
	h := int(math.Round(float64(b.Height) * float64(width) / float64(b.Width)))
	if h < 1 {
		h = 1
	}
	return width, h
}
