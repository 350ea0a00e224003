package recipe

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/an-ivanov/nansat/pixfunc"
	"github.com/samber/lo"
)

// Validate checks r against the pixel function catalog and a dataset with
// nInputs bands. It reports every problem it finds.
func Validate(r Recipe, nInputs int) error {
	var errs []error
	if len(r.Bands) == 0 {
		errs = append(errs, errors.New("recipe has no bands"))
	}

	names := lo.Map(r.Bands, func(b DerivedBand, _ int) string { return b.Name })
	for _, dup := range lo.FindDuplicates(names) {
		errs = append(errs, fmt.Errorf("duplicate band name %q", dup))
	}

	for i, b := range r.Bands {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("band %d: missing name", i+1))
		} else if !validName(b.Name) {
			errs = append(errs, fmt.Errorf("band %q: name must be a plain file name", b.Name))
		}
		e, ok := pixfunc.Info(b.Func)
		if !ok {
			errs = append(errs, fmt.Errorf("band %q: unknown pixel function %q", b.Name, b.Func))
		} else if !e.Arity.Accepts(len(b.Sources)) {
			errs = append(errs, fmt.Errorf("band %q: %s takes %s sources, got %d",
				b.Name, b.Func, e.Arity, len(b.Sources)))
		}
		if b.DataType != pixfunc.Unknown && !b.DataType.Valid() {
			errs = append(errs, fmt.Errorf("band %q: invalid data type", b.Name))
		}

		refs, err := r.Resolve(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		bad := lo.Filter(refs, func(ref SourceRef, _ int) bool {
			return ref.Derived < 0 && (ref.Input < 1 || ref.Input > nInputs)
		})
		for _, ref := range bad {
			errs = append(errs, fmt.Errorf("band %q: input band %d out of range 1..%d",
				b.Name, ref.Input, nInputs))
		}
	}
	return errors.Join(errs...)
}

// validName reports whether name can be used as an output file name prefix
// without leaving the output directory.
func validName(name string) bool {
	return !strings.ContainsAny(name, `/\`) &&
		!strings.Contains(name, "..") &&
		name != "." &&
		filepath.Base(name) == name
}
