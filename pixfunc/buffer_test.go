package pixfunc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadSampleTypes(t *testing.T) {
	cases := []struct {
		t    DataType
		put  func(b []byte)
		want float64
	}{
		{Byte, func(b []byte) { b[0] = 200 }, 200},
		{Int8, func(b []byte) { b[0] = 0xFF }, -1},
		{UInt16, func(b []byte) { native.PutUint16(b, 65535) }, 65535},
		{Int16, func(b []byte) { native.PutUint16(b, 0x8000) }, -32768},
		{UInt32, func(b []byte) { native.PutUint32(b, 4000000000) }, 4000000000},
		{Int32, func(b []byte) { native.PutUint32(b, 0xFFFFFFFE) }, -2},
		{UInt64, func(b []byte) { native.PutUint64(b, 1<<40) }, 1 << 40},
		{Int64, func(b []byte) { native.PutUint64(b, math.MaxUint64) }, -1},
		{Float32, func(b []byte) { native.PutUint32(b, math.Float32bits(-1.5)) }, -1.5},
		{Float64, func(b []byte) { native.PutUint64(b, math.Float64bits(1e300)) }, 1e300},
	}
	for _, c := range cases {
		buf := make([]byte, 3*c.t.Size())
		c.put(buf[2*c.t.Size():])
		if got := ReadSample(buf, c.t, 2); got != c.want {
			t.Errorf("%s: got %v, want %v", c.t, got, c.want)
		}
	}
}

func TestReadComplexParts(t *testing.T) {
	buf := cint16Tile([2]int16{1, 2}, [2]int16{-3, 4})
	re, im := ReadComplex(buf, CInt16, 1)
	if re != -3 || im != 4 {
		t.Errorf("CInt16[1]: got (%v, %v), want (-3, 4)", re, im)
	}
	// The imaginary part is the real reader applied to the shifted buffer.
	if got := ReadSample(buf[CInt16.Size()/2:], CInt16, 0); got != 2 {
		t.Errorf("shifted read: got %v, want 2", got)
	}

	re, im = ReadComplex(float32Tile(7), Float32, 0)
	if re != 7 || im != 0 {
		t.Errorf("Float32: got (%v, %v), want (7, 0)", re, im)
	}
}

func TestBufferPutGet(t *testing.T) {
	for _, dt := range []DataType{Byte, Int8, UInt16, Int16, UInt32, Int32, UInt64, Int64, Float32, Float64} {
		b := NewBuffer(dt, 3, 2)
		b.Put(1, 2, 42)
		if re, im := b.Get(1, 2); re != 42 || im != 0 {
			t.Errorf("%s: got (%v, %v), want (42, 0)", dt, re, im)
		}
	}
	for _, dt := range []DataType{CInt16, CInt32, CFloat32, CFloat64} {
		b := NewBuffer(dt, 2, 2)
		b.PutComplex(1, 0, -5, 6)
		if re, im := b.Get(1, 0); re != -5 || im != 6 {
			t.Errorf("%s: got (%v, %v), want (-5, 6)", dt, re, im)
		}
	}
}

func TestBufferTruncates(t *testing.T) {
	b := NewBuffer(Int16, 2, 1)
	b.Put(0, 0, 2.7)
	b.Put(0, 1, -2.7)
	if diff := cmp.Diff([]float64{2, -2}, realValues(b, 2, 1)); diff != "" {
		t.Errorf("Int16 conversion (-want +got):\n%s", diff)
	}
}

func TestBufferComplexToReal(t *testing.T) {
	b := NewBuffer(Float64, 1, 1)
	b.PutComplex(0, 0, 3, 4)
	if re, im := b.Get(0, 0); re != 3 || im != 0 {
		t.Errorf("got (%v, %v), want (3, 0)", re, im)
	}
}

func TestBufferStrides(t *testing.T) {
	// Two Float32 bands interleaved pixel by pixel, rows padded to 20 bytes.
	const width, height = 2, 2
	data := make([]byte, 20*height)
	for i := range data {
		data[i] = 0xEE
	}
	band0 := &Buffer{Data: data, Type: Float32, PixelSpace: 8, LineSpace: 20}
	band1 := &Buffer{Data: data[4:], Type: Float32, PixelSpace: 8, LineSpace: 20}

	src := float32Tile(1, 2, 3, 4)
	if err := Real([][]byte{src}, Float32, width, height, band0); err != nil {
		t.Fatal(err)
	}
	if err := Mod([][]byte{float32Tile(-5, -6, -7, -8)}, Float32, width, height, band1); err != nil {
		t.Fatal(err)
	}

	var got []float32
	for row := 0; row < height; row++ {
		for k := 0; k < 4; k++ {
			bits := native.Uint32(data[row*20+4*k:])
			got = append(got, math.Float32frombits(bits))
		}
		// Padding stays untouched.
		for _, c := range data[row*20+16 : row*20+20] {
			if c != 0xEE {
				t.Fatalf("row %d: padding overwritten", row)
			}
		}
	}
	want := []float32{1, 5, 2, 6, 3, 7, 4, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interleaved output (-want +got):\n%s", diff)
	}
}

func TestCopyWords(t *testing.T) {
	src := cfloat64Tile(1+2i, -3-4i)

	toComplex := NewBuffer(CFloat32, 2, 1)
	CopyWords(src, CFloat64, 2, 1, toComplex)
	if diff := cmp.Diff([]complex128{1 + 2i, -3 - 4i}, complexValues(toComplex, 2, 1)); diff != "" {
		t.Errorf("CFloat64 -> CFloat32 (-want +got):\n%s", diff)
	}

	toReal := NewBuffer(Int32, 2, 1)
	CopyWords(src, CFloat64, 2, 1, toReal)
	if diff := cmp.Diff([]float64{1, -3}, realValues(toReal, 2, 1)); diff != "" {
		t.Errorf("CFloat64 -> Int32 (-want +got):\n%s", diff)
	}

	same := NewBuffer(CFloat64, 2, 1)
	CopyWords(src, CFloat64, 2, 1, same)
	if diff := cmp.Diff(src, same.Data); diff != "" {
		t.Errorf("same type copy (-want +got):\n%s", diff)
	}
}
