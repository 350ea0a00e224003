package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate checks m for consistency and that every referenced file exists
// under baseDir with the recorded size. It returns one message per problem.
func Validate(m *Manifest, baseDir string) []string {
	var errs []string

	if m.Version != SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	for i, in := range m.Inputs {
		if in.Hash == "" {
			errs = append(errs, fmt.Sprintf("input[%d] %q: missing hash", i, in.Path))
		}
		if len(in.Bands) == 0 {
			errs = append(errs, fmt.Sprintf("input[%d] %q: no bands", i, in.Path))
		}
	}

	seenPaths := map[string]bool{}
	checkOutput := func(owner string, i int, o Output) {
		if o.Format == "" {
			errs = append(errs, fmt.Sprintf("%s output[%d]: empty format", owner, i))
		}
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Sprintf("%s output[%d]: invalid dimensions %dx%d",
				owner, i, o.Width, o.Height))
		}
		if o.Hash == "" {
			errs = append(errs, fmt.Sprintf("%s output[%d]: missing hash", owner, i))
		}
		if o.Path == "" {
			errs = append(errs, fmt.Sprintf("%s output[%d]: missing path", owner, i))
			return
		}
		if seenPaths[o.Path] {
			errs = append(errs, fmt.Sprintf("%s output[%d]: duplicate path %q", owner, i, o.Path))
		}
		seenPaths[o.Path] = true

		info, err := os.Stat(filepath.Join(baseDir, o.Path))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s output[%d]: file not found: %s", owner, i, o.Path))
		} else if o.Size > 0 && info.Size() != o.Size {
			errs = append(errs, fmt.Sprintf("%s output[%d]: size mismatch: manifest=%d, disk=%d",
				owner, i, o.Size, info.Size()))
		}
	}

	outputs := 0
	for name, b := range m.Bands {
		owner := fmt.Sprintf("band %q", name)
		if b.Func == "" {
			errs = append(errs, fmt.Sprintf("%s: missing func", owner))
		}
		if b.Width <= 0 || b.Height <= 0 {
			errs = append(errs, fmt.Sprintf("%s: invalid dimensions %dx%d", owner, b.Width, b.Height))
		}
		if len(b.Outputs) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no outputs", owner))
		}
		for i, o := range b.Outputs {
			checkOutput(owner, i, o)
		}
		outputs += len(b.Outputs)
	}
	if m.Stack != nil {
		checkOutput("stack", 0, *m.Stack)
		outputs++
	}

	if m.Stats.TotalBands != len(m.Bands) {
		errs = append(errs, fmt.Sprintf("stats.total_bands mismatch: %d != %d", m.Stats.TotalBands, len(m.Bands)))
	}
	if m.Stats.TotalOutputs != outputs {
		errs = append(errs, fmt.Sprintf("stats.total_outputs mismatch: %d != %d", m.Stats.TotalOutputs, outputs))
	}
	return errs
}
