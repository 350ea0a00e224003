package pixfunc

import "math"

// The functions below derive geophysical quantities from pairs of real
// fields. Complex sources contribute their real part only.

const degPerRad = 180 / math.Pi

// BetaSigmaToIncidence computes the radar incidence angle in degrees from
// beta0 (first source) and sigma0 (second source) as asin(sigma0/beta0).
// Where beta0 is 0 the angle is 0. Ratios outside [-1, 1] give NaN.
func BetaSigmaToIncidence(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := two.check("BetaSigmaToIncidence", srcs); err != nil {
		return err
	}
	beta, sigma := newPacked(srcs[0], srcType), newPacked(srcs[1], srcType)
	each(width, height, func(i, row, col int) {
		var inc float64
		if b := beta.real(i); b != 0 {
			inc = math.Asin(sigma.real(i)/b) * degPerRad
		}
		dst.Put(row, col, inc)
	})
	return nil
}

// UVToMagnitude computes the speed sqrt(u² + v²) of a vector field given as
// eastward (u) and northward (v) components.
func UVToMagnitude(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := two.check("UVToMagnitude", srcs); err != nil {
		return err
	}
	u, v := newPacked(srcs[0], srcType), newPacked(srcs[1], srcType)
	each(width, height, func(i, row, col int) {
		a, b := u.real(i), v.real(i)
		dst.Put(row, col, math.Sqrt(a*a+b*b))
	})
	return nil
}

// UVToDirectionTo computes atan2(-u, -v) in degrees plus 180, giving values
// in [0, 360].
func UVToDirectionTo(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := two.check("UVToDirectionTo", srcs); err != nil {
		return err
	}
	u, v := newPacked(srcs[0], srcType), newPacked(srcs[1], srcType)
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, math.Atan2(-u.real(i), -v.real(i))*degPerRad+180)
	})
	return nil
}

// UVToDirectionFrom computes atan2(u, v) in degrees plus 180, giving values
// in [0, 360].
func UVToDirectionFrom(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := two.check("UVToDirectionFrom", srcs); err != nil {
		return err
	}
	u, v := newPacked(srcs[0], srcType), newPacked(srcs[1], srcType)
	each(width, height, func(i, row, col int) {
		dst.Put(row, col, math.Atan2(u.real(i), v.real(i))*degPerRad+180)
	})
	return nil
}

// Sigma0HHIncidenceToSigma0VV converts HH polarised sigma0 (first source) to
// VV using the incidence angle in degrees (second source) and the
// polarisation ratio of Thompson et al. with alpha = 0.6.
func Sigma0HHIncidenceToSigma0VV(srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	if err := two.check("Sigma0HHIncidenceToSigma0VV", srcs); err != nil {
		return err
	}
	hh, inc := newPacked(srcs[0], srcType), newPacked(srcs[1], srcType)
	each(width, height, func(i, row, col int) {
		t := math.Tan(inc.real(i) / degPerRad)
		t2 := t * t
		f := (1 + 2*t2) / (1 + 0.6*t2)
		dst.Put(row, col, hh.real(i)*f*f)
	})
	return nil
}
