//go:build ignore

// gen_fixtures creates small test rasters for the E2E smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/an-ivanov/nansat/pixfunc"
)

const w, h = 64, 48

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	// Vortex wind field for the wind recipe.
	u := raster.NewBand("u", pixfunc.Float32, w, h)
	v := raster.NewBand("v", pixfunc.Float32, w, h)
	fill(u, func(x, y float64) float64 { return -y })
	fill(v, func(x, y float64) float64 { return x })
	write(filepath.Join(dir, "wind.raw"), u, v)

	// Beta0 and sigma0 HH for the radarsat2 recipe: incidence grows from
	// 20 to 45 degrees across the swath.
	beta := raster.NewBand("beta0_HH", pixfunc.Float32, w, h)
	sigma := raster.NewBand("sigma0_HH", pixfunc.Float32, w, h)
	fill(beta, func(x, y float64) float64 { return 0.1 })
	fill(sigma, func(x, y float64) float64 {
		inc := 20 + 25*(x+1)/2
		return 0.1 * math.Sin(inc*math.Pi/180)
	})
	write(filepath.Join(dir, "rs2.raw"), beta, sigma)

	// Complex plane wave for the complex recipe.
	slc := raster.NewBand("slc", pixfunc.CFloat32, w, h)
	buf := slc.Buffer(0, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			phi := float64(x+y) / 8
			buf.PutComplex(y, x, 10*math.Cos(phi), 10*math.Sin(phi))
		}
	}
	write(filepath.Join(dir, "slc.raw"), slc)

	// Gray image for the sum recipe.
	writePNG(filepath.Join(dir, "gradient.png"), gradient(w, h))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 4 fixtures in %s\n", dir)
}

// fill sets every sample of b from coordinates scaled to [-1, 1].
func fill(b *raster.Band, fn func(x, y float64) float64) {
	buf := b.Buffer(0, 0)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			fx := 2*float64(x)/float64(b.Width-1) - 1
			fy := 2*float64(y)/float64(b.Height-1) - 1
			buf.Put(y, x, fn(fx, fy))
		}
	}
}

func write(path string, bands ...*raster.Band) {
	if _, err := raster.WriteRaw(path, bands, raster.BSQ); err != nil {
		panic(err)
	}
}

func gradient(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) * 255 / (w + h - 2))})
		}
	}
	return img
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}
