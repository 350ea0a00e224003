package pixfunc

import "math"

// Buffer is the destination of a pixel function.
//
// Sample (row, col) lives at byte row*LineSpace + col*PixelSpace of Data.
// PixelSpace may be larger than Type.Size(), for example when several bands
// are interleaved in one buffer, and LineSpace may be larger than the tile
// width times PixelSpace when the buffer covers a wider raster than the tile.
//
// Values are converted with Go's native conversions: floating point values
// stored into integer types are truncated toward zero. Values outside the
// range of an integer type, including NaN and Inf, give implementation
// defined results; no clamping is done.
type Buffer struct {
	Data       []byte
	Type       DataType
	PixelSpace int
	LineSpace  int
}

// NewBuffer allocates a packed buffer for a width×height tile.
func NewBuffer(t DataType, width, height int) *Buffer {
	return &Buffer{
		Data:       make([]byte, t.Size()*width*height),
		Type:       t,
		PixelSpace: t.Size(),
		LineSpace:  t.Size() * width,
	}
}

func (b *Buffer) offset(row, col int) int {
	return row*b.LineSpace + col*b.PixelSpace
}

// Put stores a real value at (row, col). If the buffer type is complex, the
// imaginary part is set to 0.
func (b *Buffer) Put(row, col int, v float64) {
	b.PutComplex(row, col, v, 0)
}

// PutComplex stores a complex value at (row, col). If the buffer type is
// real, only re is stored.
func (b *Buffer) PutComplex(row, col int, re, im float64) {
	off := b.offset(row, col)
	if b.Type.IsComplex() {
		c := b.Type.Component()
		store(b.Data[off:], c, re)
		store(b.Data[off+b.Type.Size()/2:], c, im)
		return
	}
	store(b.Data[off:], b.Type, re)
}

// Get returns the value stored at (row, col).
func (b *Buffer) Get(row, col int) (re, im float64) {
	off := b.offset(row, col)
	re = ReadSample(b.Data[off:], b.Type, 0)
	if b.Type.IsComplex() {
		im = ReadSample(b.Data[off+b.Type.Size()/2:], b.Type, 0)
	}
	return re, im
}

// putRaw copies the bytes of one sample unchanged.
func (b *Buffer) putRaw(row, col int, sample []byte) {
	copy(b.Data[b.offset(row, col):], sample)
}

func store(dst []byte, t DataType, v float64) {
	switch t {
	case Byte:
		dst[0] = uint8(v)
	case Int8:
		dst[0] = byte(int8(v))
	case UInt16:
		native.PutUint16(dst, uint16(v))
	case Int16:
		native.PutUint16(dst, uint16(int16(v)))
	case UInt32:
		native.PutUint32(dst, uint32(v))
	case Int32:
		native.PutUint32(dst, uint32(int32(v)))
	case UInt64:
		native.PutUint64(dst, uint64(v))
	case Int64:
		native.PutUint64(dst, uint64(int64(v)))
	case Float32:
		native.PutUint32(dst, math.Float32bits(float32(v)))
	case Float64:
		native.PutUint64(dst, math.Float64bits(v))
	default:
		panic("pixfunc: store of invalid data type " + t.String())
	}
}

// CopyWords converts a packed width×height tile of type srcType into dst.
// Both parts of complex samples are carried over; see Buffer.PutComplex for
// what happens when dst is real.
func CopyWords(src []byte, srcType DataType, width, height int, dst *Buffer) {
	p := newPacked(src, srcType)
	if srcType == dst.Type {
		each(width, height, func(i, row, col int) {
			dst.putRaw(row, col, p.raw(i))
		})
		return
	}
	each(width, height, func(i, row, col int) {
		dst.PutComplex(row, col, p.real(i), p.imag(i))
	})
}

// each visits a width×height tile in row-major order, passing the packed
// source index together with the destination row and column.
func each(width, height int, fn func(i, row, col int)) {
	i := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			fn(i, row, col)
			i++
		}
	}
}
