package pixfunc

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/cpu"
)

// native is the byte order of sample buffers. Buffers come straight from the
// engine's memory, so multi-byte samples are in host order.
var native = hostOrder()

func hostOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ReadSample returns the i-th sample of a packed buffer of type t as a
// float64. The sample starts at byte i*t.Size().
//
// For complex types only the real part is decoded. The imaginary part of the
// same sample is obtained by passing the buffer shifted by t.Size()/2:
//
//	im := ReadSample(buf[t.Size()/2:], t, i)
//
// No bounds checks are done beyond Go's slice indexing.
func ReadSample(buf []byte, t DataType, i int) float64 {
	off := i * t.Size()
	switch t {
	case Byte:
		return float64(buf[off])
	case Int8:
		return float64(int8(buf[off]))
	case UInt16:
		return float64(native.Uint16(buf[off:]))
	case Int16, CInt16:
		return float64(int16(native.Uint16(buf[off:])))
	case UInt32:
		return float64(native.Uint32(buf[off:]))
	case Int32, CInt32:
		return float64(int32(native.Uint32(buf[off:])))
	case UInt64:
		return float64(native.Uint64(buf[off:]))
	case Int64:
		return float64(int64(native.Uint64(buf[off:])))
	case Float32, CFloat32:
		return float64(math.Float32frombits(native.Uint32(buf[off:])))
	case Float64, CFloat64:
		return math.Float64frombits(native.Uint64(buf[off:]))
	}
	panic("pixfunc: read of invalid data type " + t.String())
}

// ReadComplex returns both parts of the i-th sample of a packed buffer.
// The imaginary part is 0 for real types.
func ReadComplex(buf []byte, t DataType, i int) (re, im float64) {
	re = ReadSample(buf, t, i)
	if t.IsComplex() {
		im = ReadSample(buf[t.Size()/2:], t, i)
	}
	return re, im
}

// packed gives indexed access to one packed source tile.
type packed struct {
	t  DataType
	re []byte
	im []byte // nil for real types
}

func newPacked(buf []byte, t DataType) packed {
	p := packed{t: t, re: buf}
	if t.IsComplex() && len(buf) > 0 {
		p.im = buf[t.Size()/2:]
	}
	return p
}

func (p packed) real(i int) float64 {
	return ReadSample(p.re, p.t, i)
}

func (p packed) imag(i int) float64 {
	if p.im == nil {
		return 0
	}
	return ReadSample(p.im, p.t, i)
}

// raw returns the bytes of the i-th sample.
func (p packed) raw(i int) []byte {
	n := p.t.Size()
	return p.re[i*n : (i+1)*n]
}
