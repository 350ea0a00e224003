package encoder

import (
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/an-ivanov/nansat/internal/raster"
)

// Atomic counter for unique temp file names across goroutines.
var tempCounter atomic.Int64

// externalEncoder renders a quicklook to a temporary PNG and converts it
// with a command line tool found in PATH.
type externalEncoder struct {
	format string
	ext    string
	tool   string
	args   func(quality int, src, dst string) []string

	once sync.Once
	path string
}

// NewWebPEncoder returns a quicklook encoder backed by cwebp
// (apt install webp).
func NewWebPEncoder() Encoder {
	return &externalEncoder{
		format: "webp", ext: "webp", tool: "cwebp",
		args: func(q int, src, dst string) []string {
			return []string{"-q", strconv.Itoa(q), "-m", "6", "-quiet", src, "-o", dst}
		},
	}
}

// NewAVIFEncoder returns a quicklook encoder backed by avifenc
// (apt install libavif-bin).
func NewAVIFEncoder() Encoder {
	return &externalEncoder{
		format: "avif", ext: "avif", tool: "avifenc",
		args: func(q int, src, dst string) []string {
			// avifenc quantizer: 0 best, 63 worst.
			aq := strconv.Itoa(63 - q*63/100)
			return []string{"--min", aq, "--max", aq, "--speed", "6", src, dst}
		},
	}
}

func (e *externalEncoder) Format() string    { return e.format }
func (e *externalEncoder) Extension() string { return e.ext }
func (e *externalEncoder) IsQuicklook() bool { return true }

func (e *externalEncoder) Available() bool {
	e.once.Do(func() {
		if path, err := exec.LookPath(e.tool); err == nil {
			e.path = path
		}
	})
	return e.path != ""
}

func (e *externalEncoder) Encode(b *raster.Band, opts Options) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("%s not found in PATH", e.tool)
	}
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	id := tempCounter.Add(1)
	src, err := os.CreateTemp("", fmt.Sprintf("nansat_%s_src_%d_*.png", e.format, id))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(src.Name())
	if err := png.Encode(src, Quicklook(b, opts.Width)); err != nil {
		src.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	if err := src.Close(); err != nil {
		return nil, fmt.Errorf("close temp: %w", err)
	}

	dst, err := os.CreateTemp("", fmt.Sprintf("nansat_%s_dst_%d_*.%s", e.format, id, e.ext))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dst.Close()
	defer os.Remove(dst.Name())

	cmd := exec.Command(e.path, e.args(quality, src.Name(), dst.Name())...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", e.tool, err, out)
	}
	return os.ReadFile(dst.Name())
}
