package encoder

import (
	"fmt"
	"strings"
)

// priority is the order formats are listed in and the fallback order.
var priority = []string{"raw", "png", "tiff", "jpeg", "webp", "avif"}

// Registry holds all available encoders.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&RawEncoder{},
		&PNGEncoder{},
		&TIFFEncoder{},
		&JPEGEncoder{},
		NewWebPEncoder(),
		NewAVIFEncoder(),
	}
	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}
	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
// "jpg" and "tif" are accepted as aliases.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[normalize(format)]
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range priority {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// ResolveFormats filters requested formats to those available, dropping
// duplicates. Raw output is always included so derived samples are never
// lost to a preview-only run.
func (r *Registry) ResolveFormats(requested []string) []string {
	resolved := []string{"raw"}
	seen := map[string]bool{"raw": true}
	for _, f := range requested {
		f = normalize(f)
		if _, ok := r.encoders[f]; ok && !seen[f] {
			resolved = append(resolved, f)
			seen[f] = true
		}
	}
	return resolved
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}

func normalize(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return f
}
