package pixfunc

import "math"

// Func is the signature shared by all pixel functions.
//
// srcs holds one packed width×height tile per source band, all of type
// srcType. Results are written to dst, one sample per tile position.
type Func func(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error

var (
	one       = Exactly(1)
	two       = Exactly(2)
	twoOrMore = AtLeast(2)
)

// Real copies the real part of the source.
func Real(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("real", srcs); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	if srcType == dst.Type && !srcType.IsComplex() {
		each(width, height, func(i, row, col int) {
			dst.putRaw(row, col, src.raw(i))
		})
		return nil
	}
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, src.real(i))
	})
	return nil
}

// Imag copies the imaginary part of the source. Real sources give 0.
func Imag(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("imag", srcs); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, src.imag(i))
	})
	return nil
}

// Mod computes the modulus of complex sources and the absolute value of
// real ones.
func Mod(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("mod", srcs); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	if srcType.IsComplex() {
		each(width, height, func(i, row, col int) {
			re, im := src.real(i), src.imag(i)
			dst.Put(row, col, math.Sqrt(re*re+im*im))
		})
		return nil
	}
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, math.Abs(src.real(i)))
	})
	return nil
}

// Phase computes atan2(im, re) for complex sources. A real source has phase
// 0 where it is non-negative and π where it is negative.
func Phase(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("phase", srcs); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	if srcType.IsComplex() {
		each(width, height, func(i, row, col int) {
			dst.Put(row, col, math.Atan2(src.imag(i), src.real(i)))
		})
		return nil
	}
	each(width, height, func(i, row, col int) {
		v := 0.0
		if src.real(i) < 0 {
			v = math.Pi
		}
		dst.Put(row, col, v)
	})
	return nil
}

// Conj computes the complex conjugate. Real sources are copied as by Real.
func Conj(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("conj", srcs); err != nil {
		return err
	}
	if !srcType.IsComplex() {
		return Real(srcs, srcType, width, height, dst)
	}
	src := newPacked(srcs[0], srcType)
	each(width, height, func(i, row, col int) {
		dst.PutComplex(row, col, src.real(i), -src.imag(i))
	})
	return nil
}

// Sum adds all sources.
func Sum(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := twoOrMore.check("sum", srcs); err != nil {
		return err
	}
	ps := packAll(srcs, srcType)
	each(width, height, func(i, row, col int) {
		var re, im float64
		for _, p := range ps {
			re += p.real(i)
			im += p.imag(i)
		}
		dst.PutComplex(row, col, re, im)
	})
	return nil
}

// Diff subtracts the second source from the first.
func Diff(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := two.check("diff", srcs); err != nil {
		return err
	}
	a, b := newPacked(srcs[0], srcType), newPacked(srcs[1], srcType)
	each(width, height, func(i, row, col int) {
		dst.PutComplex(row, col, a.real(i)-b.real(i), a.imag(i)-b.imag(i))
	})
	return nil
}

// Mul multiplies all sources, left to right, starting from 1.
func Mul(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := twoOrMore.check("mul", srcs); err != nil {
		return err
	}
	ps := packAll(srcs, srcType)
	if !srcType.IsComplex() {
		each(width, height, func(i, row, col int) {
			v := 1.0
			for _, p := range ps {
				v *= p.real(i)
			}
			dst.Put(row, col, v)
		})
		return nil
	}
	each(width, height, func(i, row, col int) {
		re, im := 1.0, 0.0
		for _, p := range ps {
			r, j := p.real(i), p.imag(i)
			re, im = re*r-im*j, re*j+im*r
		}
		dst.PutComplex(row, col, re, im)
	})
	return nil
}

// CMul multiplies the first source by the conjugate of the second.
//
// For real sources only the plain product is computed and the imaginary
// part of the result is 0.
func CMul(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := two.check("cmul", srcs); err != nil {
		return err
	}
	a, b := newPacked(srcs[0], srcType), newPacked(srcs[1], srcType)
	if !srcType.IsComplex() {
		each(width, height, func(i, row, col int) {
			dst.PutComplex(row, col, a.real(i)*b.real(i), 0)
		})
		return nil
	}
	each(width, height, func(i, row, col int) {
		re0, im0 := a.real(i), a.imag(i)
		re1, im1 := b.real(i), b.imag(i)
		dst.PutComplex(row, col, re0*re1+im0*im1, re1*im0-re0*im1)
	})
	return nil
}

// Inv computes 1/x. Zero gives Inf for real sources and NaN for complex
// ones.
func Inv(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("inv", srcs); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	if !srcType.IsComplex() {
		each(width, height, func(i, row, col int) {
			dst.Put(row, col, 1/src.real(i))
		})
		return nil
	}
	each(width, height, func(i, row, col int) {
		re, im := src.real(i), src.imag(i)
		d := re*re + im*im
		dst.PutComplex(row, col, re/d, -im/d)
	})
	return nil
}

// Intensity computes re² + im², or x² for real sources.
func Intensity(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("intensity", srcs); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	each(width, height, func(i, row, col int) {
		re, im := src.real(i), src.imag(i)
		dst.Put(row, col, re*re+im*im)
	})
	return nil
}

// Sqrt computes the square root of a real source.
func Sqrt(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("sqrt", srcs); err != nil {
		return err
	}
	if err := realOnly("sqrt", srcType); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, math.Sqrt(src.real(i)))
	})
	return nil
}

// Log10 computes log10(|x|) for real sources.
//
// Complex sources give log10(re² + im²), the logarithm of the intensity and
// not of the modulus.
func Log10(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check("log10", srcs); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	if srcType.IsComplex() {
		each(width, height, func(i, row, col int) {
			re, im := src.real(i), src.imag(i)
			dst.Put(row, col, math.Log10(re*re+im*im))
		})
		return nil
	}
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, math.Log10(math.Abs(src.real(i))))
	})
	return nil
}

// DB2Amp converts decibels to amplitude, 10^(x/20).
func DB2Amp(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	return pow10("dB2amp", 20, srcs, srcType, width, height, dst)
}

// DB2Pow converts decibels to power, 10^(x/10).
func DB2Pow(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	return pow10("dB2pow", 10, srcs, srcType, width, height, dst)
}

func pow10(name string, fact float64, srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := one.check(name, srcs); err != nil {
		return err
	}
	if err := realOnly(name, srcType); err != nil {
		return err
	}
	src := newPacked(srcs[0], srcType)
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, math.Pow(10, src.real(i)/fact))
	})
	return nil
}

func packAll(srcs [][]byte, t DataType) []packed {
	ps := make([]packed, len(srcs))
	for k, buf := range srcs {
		ps[k] = newPacked(buf, t)
	}
	return ps
}
