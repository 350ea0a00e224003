package raster

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Resample scales img to width×height. Gray and 16-bit gray images keep
// their type and precision so they still load as a single band; other
// images are resampled with a Lanczos filter into NRGBA.
func Resample(img image.Image, width, height int) image.Image {
	var dst draw.Image
	switch img.(type) {
	case *image.Gray:
		dst = image.NewGray(image.Rect(0, 0, width, height))
	case *image.Gray16:
		dst = image.NewGray16(image.Rect(0, 0, width, height))
	default:
		return imaging.Resize(img, width, height, imaging.Lanczos)
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
