package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/an-ivanov/nansat/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a derive output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	m, err := manifest.Read(path)
	if err != nil {
		return err
	}
	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Recipe:           %s\n", m.Recipe)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
		fmt.Printf("  Tiles:            %d × %d px per band\n", m.BuildInfo.Tiles, m.BuildInfo.BlockSize)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total inputs:     %d\n", s.TotalInputs)
	fmt.Printf("  Total bands:      %d\n", s.TotalBands)
	fmt.Printf("  Total outputs:    %d\n", s.TotalOutputs)
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Println()

	fmt.Println("  Inputs:")
	for i, in := range m.Inputs {
		fmt.Printf("    %d. %-40s %4dx%-4d %v\n", i+1, truncKey(in.Path, 40), in.Width, in.Height, in.Bands)
	}
	fmt.Println()

	// Per-format breakdown.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, b := range m.Bands {
		for _, o := range b.Outputs {
			fs := formatStats[o.Format]
			fs.count++
			fs.bytes += o.Size
			formatStats[o.Format] = fs
		}
	}
	fmt.Println("  Format breakdown:")
	for _, f := range []string{"raw", "png", "tiff", "jpeg", "webp", "avif"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	if m.Stack != nil {
		fmt.Printf("    stack   %s  %s\n", m.Stack.Path, formatBytes(m.Stack.Size))
	}
	fmt.Println()

	// Per-band statistics.
	names := make([]string, 0, len(m.Bands))
	for name := range m.Bands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("  Bands:")
	for _, name := range names {
		b := m.Bands[name]
		fmt.Printf("    %-24s %-8s valid %-8d min %-10.4g mean %-10.4g max %.4g\n",
			truncKey(name, 24), b.DataType, b.Stats.Valid, b.Stats.Min, b.Stats.Mean, b.Stats.Max)
	}

	// Warnings.
	var warnings []string
	for _, name := range names {
		b := m.Bands[name]
		if len(b.Outputs) == 0 {
			warnings = append(warnings, fmt.Sprintf("band %q has no outputs", name))
		}
		if b.Stats.Valid == 0 {
			warnings = append(warnings, fmt.Sprintf("band %q has no finite samples", name))
		}
		if b.Stats.NaN > 0 {
			warnings = append(warnings, fmt.Sprintf("band %q has %d NaN samples", name, b.Stats.NaN))
		}
		if b.Stats.Inf > 0 {
			warnings = append(warnings, fmt.Sprintf("band %q has %d infinite samples", name, b.Stats.Inf))
		}
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
