package pixfunc

import "math"

func float32Tile(vals ...float32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		native.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func float64Tile(vals ...float64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		native.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}

func cfloat64Tile(vals ...complex128) []byte {
	buf := make([]byte, 16*len(vals))
	for i, v := range vals {
		native.PutUint64(buf[16*i:], math.Float64bits(real(v)))
		native.PutUint64(buf[16*i+8:], math.Float64bits(imag(v)))
	}
	return buf
}

func cint16Tile(vals ...[2]int16) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		native.PutUint16(buf[4*i:], uint16(v[0]))
		native.PutUint16(buf[4*i+2:], uint16(v[1]))
	}
	return buf
}

// realValues reads back the real parts of a width×height destination.
func realValues(dst *Buffer, width, height int) []float64 {
	var out []float64
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			re, _ := dst.Get(row, col)
			out = append(out, re)
		}
	}
	return out
}

func complexValues(dst *Buffer, width, height int) []complex128 {
	var out []complex128
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			re, im := dst.Get(row, col)
			out = append(out, complex(re, im))
		}
	}
	return out
}

// sentinelBuffer returns a destination pre-filled with a recognisable pattern.
func sentinelBuffer(t DataType, width, height int) *Buffer {
	b := NewBuffer(t, width, height)
	for i := range b.Data {
		b.Data[i] = 0xA5
	}
	return b
}

// parts flattens complex values so that float comparison options apply.
func parts(cs []complex128) []float64 {
	out := make([]float64, 0, 2*len(cs))
	for _, c := range cs {
		out = append(out, real(c), imag(c))
	}
	return out
}
