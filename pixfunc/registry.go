package pixfunc

import "fmt"

// Entry describes one pixel function of the catalog.
type Entry struct {
	Name  string
	Func  Func
	Arity Arity

	// RealOnly is set for functions that reject complex sources.
	RealOnly bool

	Description string
}

// catalog is fixed at compile time and never modified.
var catalog = []Entry{
	{"real", Real, one, false, "real part"},
	{"imag", Imag, one, false, "imaginary part, 0 for real sources"},
	{"mod", Mod, one, false, "modulus or absolute value"},
	{"phase", Phase, one, false, "phase angle in radians"},
	{"conj", Conj, one, false, "complex conjugate"},
	{"sum", Sum, twoOrMore, false, "sum of all sources"},
	{"diff", Diff, two, false, "first source minus second"},
	{"mul", Mul, twoOrMore, false, "product of all sources"},
	{"cmul", CMul, two, false, "first source times conjugate of second"},
	{"inv", Inv, one, false, "reciprocal"},
	{"intensity", Intensity, one, false, "squared modulus"},
	{"sqrt", Sqrt, one, true, "square root"},
	{"log10", Log10, one, false, "log10 of absolute value (of intensity for complex)"},
	{"dB2amp", DB2Amp, one, true, "decibel to amplitude"},
	{"dB2pow", DB2Pow, one, true, "decibel to power"},

	{"BetaSigmaToIncidence", BetaSigmaToIncidence, two, false, "incidence angle in degrees from beta0 and sigma0"},
	{"UVToMagnitude", UVToMagnitude, two, false, "vector magnitude from u and v"},
	{"UVToDirectionTo", UVToDirectionTo, two, false, "direction the flow goes to, degrees"},
	{"UVToDirectionFrom", UVToDirectionFrom, two, false, "direction the flow comes from, degrees"},
	{"Sigma0HHIncidenceToSigma0VV", Sigma0HHIncidenceToSigma0VV, two, false, "VV sigma0 from HH sigma0 and incidence angle"},
}

var catalogIndex = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, e := range catalog {
		m[e.Name] = i
	}
	return m
}()

// Lookup returns the pixel function registered under name. Names are case
// sensitive.
func Lookup(name string) (Func, bool) {
	e, ok := Info(name)
	return e.Func, ok
}

// Info returns the catalog entry for name.
func Info(name string) (Entry, bool) {
	i, ok := catalogIndex[name]
	if !ok {
		return Entry{}, false
	}
	return catalog[i], true
}

// Entries returns a copy of the catalog in registration order.
func Entries() []Entry {
	return append([]Entry(nil), catalog...)
}

// Names returns the names of all pixel functions in registration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// Apply runs the pixel function registered under name.
func Apply(name string, srcs [][]byte, srcType DataType, width, height int, dst *Buffer) error {
	fn, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFunc, name)
	}
	return fn(srcs, srcType, width, height, dst)
}
