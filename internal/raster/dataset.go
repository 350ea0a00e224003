package raster

import "fmt"

// Dataset is an ordered list of bands sharing one extent.
type Dataset struct {
	Width  int
	Height int
	Bands  []*Band
}

// Add appends a band. The first band fixes the extent of an empty dataset.
func (d *Dataset) Add(b *Band) error {
	if len(d.Bands) == 0 && d.Width == 0 && d.Height == 0 {
		d.Width, d.Height = b.Width, b.Height
	}
	if b.Width != d.Width || b.Height != d.Height {
		return fmt.Errorf("band %s: extent %dx%d does not match dataset %dx%d",
			b.Name, b.Width, b.Height, d.Width, d.Height)
	}
	d.Bands = append(d.Bands, b)
	return nil
}

// Merge appends all bands of other.
func (d *Dataset) Merge(other *Dataset) error {
	for _, b := range other.Bands {
		if err := d.Add(b); err != nil {
			return err
		}
	}
	return nil
}

// Band returns band n, counting from 1.
func (d *Dataset) Band(n int) (*Band, error) {
	if n < 1 || n > len(d.Bands) {
		return nil, fmt.Errorf("band %d out of range 1..%d", n, len(d.Bands))
	}
	return d.Bands[n-1], nil
}

// Lookup returns the band with the given name, or nil.
func (d *Dataset) Lookup(name string) *Band {
	for _, b := range d.Bands {
		if b.Name == name {
			return b
		}
	}
	return nil
}
