package pixfunc

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogNames(t *testing.T) {
	want := []string{
		"real", "imag", "mod", "phase", "conj", "sum", "diff", "mul", "cmul",
		"inv", "intensity", "sqrt", "log10", "dB2amp", "dB2pow",
		"BetaSigmaToIncidence", "UVToMagnitude", "UVToDirectionTo",
		"UVToDirectionFrom", "Sigma0HHIncidenceToSigma0VV",
	}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	for _, name := range want {
		if _, ok := Lookup(name); !ok {
			t.Errorf("lookup %q failed", name)
		}
	}
	if _, ok := Lookup("DB2AMP"); ok {
		t.Error("lookup must be case sensitive")
	}
}

func TestCatalogArity(t *testing.T) {
	tile := float64Tile(1, 2)
	for _, e := range Entries() {
		call := func(n int) error {
			srcs := make([][]byte, n)
			for i := range srcs {
				srcs[i] = tile
			}
			return e.Func(srcs, Float64, 2, 1, NewBuffer(Float64, 2, 1))
		}
		if err := call(e.Arity.Min); err != nil {
			t.Errorf("%s with %d sources: %v", e.Name, e.Arity.Min, err)
		}
		if err := call(e.Arity.Min - 1); !errors.Is(err, ErrArity) {
			t.Errorf("%s with %d sources: got %v, want ErrArity", e.Name, e.Arity.Min-1, err)
		}
		if e.Arity.Max >= 0 {
			if err := call(e.Arity.Max + 1); !errors.Is(err, ErrArity) {
				t.Errorf("%s with %d sources: got %v, want ErrArity", e.Name, e.Arity.Max+1, err)
			}
		} else if err := call(e.Arity.Min + 3); err != nil {
			t.Errorf("%s with %d sources: %v", e.Name, e.Arity.Min+3, err)
		}
	}
}

func TestCatalogRealOnly(t *testing.T) {
	tile := cfloat64Tile(1+1i, 2-2i)
	for _, e := range Entries() {
		srcs := make([][]byte, e.Arity.Min)
		for i := range srcs {
			srcs[i] = tile
		}
		err := e.Func(srcs, CFloat64, 2, 1, NewBuffer(CFloat64, 2, 1))
		if e.RealOnly && !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("%s: got %v, want ErrUnsupportedType", e.Name, err)
		}
		if !e.RealOnly && err != nil {
			t.Errorf("%s: %v", e.Name, err)
		}
	}
}

func TestApply(t *testing.T) {
	dst := NewBuffer(Float32, 2, 2)
	srcs := [][]byte{float32Tile(1, 2, 3, 4), float32Tile(5, 6, 7, 8)}
	if err := Apply("sum", srcs, Float32, 2, 2, dst); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{6, 8, 10, 12}, realValues(dst, 2, 2)); diff != "" {
		t.Errorf("sum (-want +got):\n%s", diff)
	}

	err := Apply("atan", srcs, Float32, 2, 2, dst)
	if !errors.Is(err, ErrUnknownFunc) {
		t.Errorf("unknown function: got %v, want ErrUnknownFunc", err)
	}
}

func TestEntriesIsCopy(t *testing.T) {
	e := Entries()
	e[0].Name = "changed"
	if Names()[0] != "real" {
		t.Error("modifying Entries() changed the catalog")
	}
}

func TestConcurrentCalls(t *testing.T) {
	const workers = 8
	const width, height = 16, 16

	srcs := make([][]byte, 3)
	for k := range srcs {
		vals := make([]float64, width*height)
		for i := range vals {
			vals[i] = float64(i*(k+1)) - 100
		}
		srcs[k] = float64Tile(vals...)
	}
	want := NewBuffer(Float64, width, height)
	if err := Apply("mul", srcs, Float64, width, height, want); err != nil {
		t.Fatal(err)
	}

	dsts := make([]*Buffer, workers)
	var wg sync.WaitGroup
	for w := range dsts {
		dsts[w] = NewBuffer(Float64, width, height)
		wg.Add(1)
		go func(dst *Buffer) {
			defer wg.Done()
			Apply("mul", srcs, Float64, width, height, dst)
		}(dsts[w])
	}
	wg.Wait()

	for w, dst := range dsts {
		if diff := cmp.Diff(want.Data, dst.Data); diff != "" {
			t.Errorf("worker %d differs (-want +got):\n%s", w, diff)
		}
	}
}
