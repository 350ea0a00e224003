// Package recipe describes derived bands: which pixel function computes
// them and from which sources.
package recipe

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/an-ivanov/nansat/pixfunc"
)

// Recipe is an ordered list of derived bands computed over one dataset.
type Recipe struct {
	Name  string        `json:"name"`
	Bands []DerivedBand `json:"bands"`

	// Quicklook controls preview images written next to the bands.
	Quicklook Quicklook `json:"quicklook"`
}

// Quicklook defines preview image parameters.
type Quicklook struct {
	Widths  []int    `json:"widths,omitempty"`  // target widths
	Formats []string `json:"formats,omitempty"` // preview formats
	Quality int      `json:"quality,omitempty"` // jpeg quality 1-100
}

// DefaultQuality is used when a quicklook does not set a quality.
const DefaultQuality = 85

// EffectiveQuality returns q.Quality with the default applied.
func (q Quicklook) EffectiveQuality() int {
	if q.Quality <= 0 || q.Quality > 100 {
		return DefaultQuality
	}
	return q.Quality
}

// EffectiveWidths returns the preview widths for a band originalWidth
// pixels wide. Bands are never upscaled; if every width is too large the
// original width is used.
func (q Quicklook) EffectiveWidths(originalWidth int) []int {
	seen := map[int]bool{}
	var result []int
	for _, w := range q.Widths {
		if w <= 0 || w > originalWidth || seen[w] {
			continue
		}
		seen[w] = true
		result = append(result, w)
	}
	if len(result) == 0 && originalWidth > 0 {
		result = append(result, originalWidth)
	}
	return result
}

// DerivedBand is one output band.
type DerivedBand struct {
	Name string `json:"name"`
	Func string `json:"func"`

	// Sources are 1-based band numbers of the input dataset ("2") or names
	// of derived bands listed earlier in the same recipe.
	Sources []string `json:"sources"`

	// DataType of the output. Float32 if unset.
	DataType pixfunc.DataType `json:"data_type,omitempty"`

	// Metadata is copied to the manifest unchanged.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// DefaultDataType is the output type of derived bands that do not set one.
const DefaultDataType = pixfunc.Float32

// OutputType returns the band's data type with the default applied.
func (b DerivedBand) OutputType() pixfunc.DataType {
	if b.DataType == pixfunc.Unknown {
		return DefaultDataType
	}
	return b.DataType
}

// SourceRef is a resolved source reference: either an input band number or
// the index of an earlier derived band.
type SourceRef struct {
	Input   int // 1-based input band, 0 if Derived is used
	Derived int // index into Recipe.Bands, -1 if Input is used
}

// Resolve interprets the sources of band i.
func (r Recipe) Resolve(i int) ([]SourceRef, error) {
	b := r.Bands[i]
	refs := make([]SourceRef, len(b.Sources))
	for k, s := range b.Sources {
		if n, err := strconv.Atoi(s); err == nil {
			refs[k] = SourceRef{Input: n, Derived: -1}
			continue
		}
		j := r.index(s)
		if j < 0 {
			return nil, fmt.Errorf("band %q: unknown source %q", b.Name, s)
		}
		if j >= i {
			return nil, fmt.Errorf("band %q: source %q is not computed before it", b.Name, s)
		}
		refs[k] = SourceRef{Derived: j}
	}
	return refs, nil
}

func (r Recipe) index(name string) int {
	for i, b := range r.Bands {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// Load reads a recipe from a JSON file.
func Load(path string) (Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("read recipe: %w", err)
	}
	var r Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return Recipe{}, fmt.Errorf("parse recipe %s: %w", path, err)
	}
	return r, nil
}
