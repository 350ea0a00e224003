package raster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/an-ivanov/nansat/pixfunc"
)

// Interleave is the sample order of a multi-band raw file.
type Interleave string

const (
	// BSQ stores one complete band after the other.
	BSQ Interleave = "bsq"
	// BIP stores all bands of a pixel next to each other.
	BIP Interleave = "bip"
)

// Header is the JSON sidecar of a raw file, stored as <path>.json.
type Header struct {
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	DataType   pixfunc.DataType `json:"data_type"`
	Interleave Interleave       `json:"interleave,omitempty"`
	Bands      []string         `json:"bands"`
}

// HeaderPath returns the sidecar path of a raw file.
func HeaderPath(path string) string {
	return path + ".json"
}

// MarshalRaw encodes bands into one buffer. Bands of different types are
// promoted to a common type first.
func MarshalRaw(bands []*Band, il Interleave) ([]byte, Header, error) {
	if len(bands) == 0 {
		return nil, Header{}, fmt.Errorf("no bands")
	}
	if il == "" {
		il = BSQ
	}
	types := make([]pixfunc.DataType, len(bands))
	for i, b := range bands {
		types[i] = b.Type
	}
	t := Promote(types...)
	w, h := bands[0].Width, bands[0].Height
	hdr := Header{Width: w, Height: h, DataType: t, Interleave: il}

	n, size := len(bands), t.Size()
	out := make([]byte, n*w*h*size)
	for k, b := range bands {
		if b.Width != w || b.Height != h {
			return nil, Header{}, fmt.Errorf("band %s: extent %dx%d, want %dx%d", b.Name, b.Width, b.Height, w, h)
		}
		hdr.Bands = append(hdr.Bands, b.Name)
		var dst *pixfunc.Buffer
		switch il {
		case BSQ:
			dst = &pixfunc.Buffer{Data: out[k*w*h*size:], Type: t, PixelSpace: size, LineSpace: w * size}
		case BIP:
			dst = &pixfunc.Buffer{Data: out[k*size:], Type: t, PixelSpace: n * size, LineSpace: w * n * size}
		default:
			return nil, Header{}, fmt.Errorf("unknown interleave %q", il)
		}
		pixfunc.CopyWords(b.Data, b.Type, w, h, dst)
	}
	return out, hdr, nil
}

// UnmarshalRaw splits a raw buffer described by hdr into bands.
func UnmarshalRaw(data []byte, hdr Header) (*Dataset, error) {
	if !hdr.DataType.Valid() {
		return nil, fmt.Errorf("invalid data type %s", hdr.DataType)
	}
	n, size := len(hdr.Bands), hdr.DataType.Size()
	pixels := hdr.Width * hdr.Height
	if want := n * pixels * size; len(data) != want {
		return nil, fmt.Errorf("raw data has %d bytes, want %d", len(data), want)
	}

	d := &Dataset{Width: hdr.Width, Height: hdr.Height}
	for k, name := range hdr.Bands {
		b := NewBand(name, hdr.DataType, hdr.Width, hdr.Height)
		switch hdr.Interleave {
		case BSQ, "":
			copy(b.Data, data[k*pixels*size:])
		case BIP:
			for i := 0; i < pixels; i++ {
				copy(b.Data[i*size:(i+1)*size], data[(i*n+k)*size:])
			}
		default:
			return nil, fmt.Errorf("unknown interleave %q", hdr.Interleave)
		}
		d.Bands = append(d.Bands, b)
	}
	return d, nil
}

// WriteRaw writes bands to path and the header to its sidecar.
func WriteRaw(path string, bands []*Band, il Interleave) (Header, error) {
	data, hdr, err := MarshalRaw(bands, il)
	if err != nil {
		return Header{}, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Header{}, err
	}
	return hdr, WriteHeader(path, hdr)
}

// WriteHeader writes the sidecar of the raw file at path.
func WriteHeader(path string, hdr Header) error {
	js, err := json.MarshalIndent(hdr, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')
	return os.WriteFile(HeaderPath(path), js, 0o644)
}

// ReadRaw reads a raw file and its sidecar.
func ReadRaw(path string) (*Dataset, error) {
	js, err := os.ReadFile(HeaderPath(path))
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var hdr Header
	if err := json.Unmarshal(js, &hdr); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := UnmarshalRaw(data, hdr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
