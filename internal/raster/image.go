package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/an-ivanov/nansat/pixfunc"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Options control how inputs are loaded.
type Options struct {
	// Width and Height, when non-zero, resample image inputs to this extent.
	// Raw inputs must already match it.
	Width  int
	Height int
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Open loads a dataset from path. Files ending in .raw are read with their
// JSON sidecar, everything else is decoded as an image.
func Open(path string, opts Options) (*Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".raw":
		d, err := ReadRaw(path)
		if err != nil {
			return nil, err
		}
		if opts.Width > 0 && opts.Height > 0 && (d.Width != opts.Width || d.Height != opts.Height) {
			return nil, fmt.Errorf("%s: extent %dx%d, want %dx%d", path, d.Width, d.Height, opts.Width, opts.Height)
		}
		return d, nil
	case imageExtensions[ext]:
		return OpenImage(path, opts)
	}
	return nil, fmt.Errorf("%s: unsupported input format %q", path, ext)
}

// OpenImage decodes an image file. Gray images give one Byte band, 16-bit
// gray images one UInt16 band and everything else four Byte bands (r, g, b,
// a). Band names are the file name without extension plus a suffix.
func OpenImage(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	b := img.Bounds()
	if opts.Width > 0 && opts.Height > 0 && (b.Dx() != opts.Width || b.Dy() != opts.Height) {
		img = Resample(img, opts.Width, opts.Height)
	}
	return FromImage(base, img), nil
}

// FromImage splits an image into bands.
func FromImage(name string, img image.Image) *Dataset {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	d := &Dataset{Width: w, Height: h}

	switch src := img.(type) {
	case *image.Gray:
		band := NewBand(name+":gray", pixfunc.Byte, w, h)
		for y := 0; y < h; y++ {
			off := src.PixOffset(r.Min.X, r.Min.Y+y)
			copy(band.Data[y*w:], src.Pix[off:off+w])
		}
		d.Bands = append(d.Bands, band)
	case *image.Gray16:
		band := NewBand(name+":gray", pixfunc.UInt16, w, h)
		dst := band.Buffer(0, 0)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Put(y, x, float64(src.Gray16At(r.Min.X+x, r.Min.Y+y).Y))
			}
		}
		d.Bands = append(d.Bands, band)
	default:
		nrgba := imaging.Clone(img)
		for c, suffix := range []string{":r", ":g", ":b", ":a"} {
			band := NewBand(name+suffix, pixfunc.Byte, w, h)
			for i := range band.Data {
				band.Data[i] = nrgba.Pix[(i/w)*nrgba.Stride+(i%w)*4+c]
			}
			d.Bands = append(d.Bands, band)
		}
	}
	return d
}
