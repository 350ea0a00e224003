package raster

import (
	"math"

	"github.com/an-ivanov/nansat/pixfunc"
)

// Stats summarises the real part of a band.
type Stats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Valid int     `json:"valid"`
	NaN   int     `json:"nan,omitempty"`
	Inf   int     `json:"inf,omitempty"`
}

// Stats scans the band. Min, Max and Mean cover finite samples only and are
// 0 when there are none.
func (b *Band) Stats() Stats {
	var s Stats
	var sum float64
	n := b.Width * b.Height
	for i := 0; i < n; i++ {
		v := pixfunc.ReadSample(b.Data, b.Type, i)
		switch {
		case math.IsNaN(v):
			s.NaN++
			continue
		case math.IsInf(v, 0):
			s.Inf++
			continue
		}
		if s.Valid == 0 || v < s.Min {
			s.Min = v
		}
		if s.Valid == 0 || v > s.Max {
			s.Max = v
		}
		sum += v
		s.Valid++
	}
	if s.Valid > 0 {
		s.Mean = sum / float64(s.Valid)
	}
	return s
}
