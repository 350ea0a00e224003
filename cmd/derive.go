package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/an-ivanov/nansat/internal/hasher"
	"github.com/an-ivanov/nansat/internal/manifest"
	"github.com/an-ivanov/nansat/internal/pipeline"
	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/an-ivanov/nansat/internal/recipe"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	deriveRecipe     string
	deriveRecipeFile string
	deriveOutDir     string
	deriveFormats    []string
	deriveWidths     []int
	deriveQuality    int
	deriveWorkers    int
	deriveBlock      int
	deriveInterleave string
	deriveWidth      int
	deriveHeight     int
)

var deriveCmd = &cobra.Command{
	Use:   "derive <input>...",
	Short: "Compute derived bands and write them with a manifest",
	Long: `Loads the inputs (png, jpeg, gif, bmp, tiff, webp images, or .raw files
with a .raw.json header) into one dataset, numbering bands from 1 in input
order, and computes every derived band of the recipe.

Images are resampled to the extent of the first input, or to --width and
--height when given. Raw inputs must match the extent exactly.

Output filenames are content-addressed: <band>.<w>.<h>.<hash>.ext`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().StringVarP(&deriveRecipe, "recipe", "r", "", "built-in recipe: "+strings.Join(recipe.Names(), ", "))
	deriveCmd.Flags().StringVar(&deriveRecipeFile, "recipe-file", "", "JSON recipe file (overrides --recipe)")
	deriveCmd.Flags().StringVarP(&deriveOutDir, "out", "o", "./nansat_out", "output directory")
	deriveCmd.Flags().StringSliceVarP(&deriveFormats, "format", "f", nil, "quicklook formats (overrides recipe); raw is always written")
	deriveCmd.Flags().IntSliceVar(&deriveWidths, "widths", nil, "quicklook widths (overrides recipe)")
	deriveCmd.Flags().IntVarP(&deriveQuality, "quality", "q", 0, "jpeg quality 1-100 (0 = recipe default)")
	deriveCmd.Flags().IntVarP(&deriveWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	deriveCmd.Flags().IntVarP(&deriveBlock, "block", "b", pipeline.DefaultBlockSize, "tile size in pixels")
	deriveCmd.Flags().StringVar(&deriveInterleave, "interleave", "", "also write all bands to one raw file: bsq or bip")
	deriveCmd.Flags().IntVar(&deriveWidth, "width", 0, "resample image inputs to this width")
	deriveCmd.Flags().IntVar(&deriveHeight, "height", 0, "resample image inputs to this height")
	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, args []string) error {
	start := time.Now()

	r, err := loadRecipe()
	if err != nil {
		return err
	}
	if deriveFormats != nil {
		r.Quicklook.Formats = deriveFormats
	}
	if deriveWidths != nil {
		r.Quicklook.Widths = deriveWidths
	}
	if deriveQuality > 0 {
		r.Quicklook.Quality = deriveQuality
	}

	il := raster.Interleave(strings.ToLower(deriveInterleave))
	if il != "" && il != raster.BSQ && il != raster.BIP {
		return fmt.Errorf("unknown interleave %q (want bsq or bip)", deriveInterleave)
	}

	absOutput, err := filepath.Abs(deriveOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	logVerbose("output:  %s", absOutput)
	logVerbose("recipe:  %s (%d bands, widths=%v, formats=%v)",
		r.Name, len(r.Bands), r.Quicklook.Widths, r.Quicklook.Formats)

	ds, inputs, err := loadInputs(args)
	if err != nil {
		return err
	}
	logVerbose("dataset: %dx%d, %d bands", ds.Width, ds.Height, len(ds.Bands))

	p := pipeline.New(pipeline.Config{
		Workers:    deriveWorkers,
		BlockSize:  deriveBlock,
		Verbose:    verbose,
		OutputDir:  absOutput,
		Interleave: il,
	})

	cfg := p.Config()
	logVerbose("workers: %d, tiles of %d px", cfg.Workers, cfg.BlockSize)

	out, err := p.Run(cmd.Context(), r, ds)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	m, err := p.Export(cmd.Context(), out, r, inputs)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printDeriveReport(m, time.Since(start))
	return nil
}

func loadRecipe() (recipe.Recipe, error) {
	if deriveRecipeFile != "" {
		r, err := recipe.Load(deriveRecipeFile)
		if err != nil {
			return recipe.Recipe{}, err
		}
		if r.Name == "" {
			r.Name = strings.TrimSuffix(filepath.Base(deriveRecipeFile), filepath.Ext(deriveRecipeFile))
		}
		return r, nil
	}
	if deriveRecipe == "" {
		return recipe.Recipe{}, fmt.Errorf("no recipe given; use --recipe (%s) or --recipe-file",
			strings.Join(recipe.Names(), ", "))
	}
	r, ok := recipe.Get(deriveRecipe)
	if !ok {
		return recipe.Recipe{}, fmt.Errorf("unknown recipe %q (available: %s)",
			deriveRecipe, strings.Join(recipe.Names(), ", "))
	}
	return r, nil
}

// loadInputs opens every input into one dataset. Images are resampled to
// --width×--height, or to the extent of the first input if neither is set.
func loadInputs(paths []string) (*raster.Dataset, []manifest.Input, error) {
	if (deriveWidth > 0) != (deriveHeight > 0) || deriveWidth < 0 || deriveHeight < 0 {
		return nil, nil, fmt.Errorf("--width and --height must be given together (got %dx%d)",
			deriveWidth, deriveHeight)
	}
	opts := raster.Options{Width: deriveWidth, Height: deriveHeight}
	ds := &raster.Dataset{}
	var inputs []manifest.Input

	for _, path := range paths {
		d, err := raster.Open(path, opts)
		if err != nil {
			return nil, nil, err
		}
		if opts.Width == 0 && opts.Height == 0 {
			opts.Width, opts.Height = d.Width, d.Height
		}
		if err := ds.Merge(d); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		hash, size, err := hasher.FileHash(path, 16)
		if err != nil {
			return nil, nil, err
		}
		in := manifest.Input{
			Path:   filepath.ToSlash(path),
			Hash:   hash,
			Size:   size,
			Width:  d.Width,
			Height: d.Height,
		}
		for _, b := range d.Bands {
			in.Bands = append(in.Bands, b.Name)
		}
		inputs = append(inputs, in)
		logVerbose("input:   %s (%d bands, %dx%d)", path, len(d.Bands), d.Width, d.Height)
	}
	return ds, inputs, nil
}

func printDeriveReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("╔══════════════════════════════════════════════════╗")
		fmt.Println("║              nansat derive complete              ║")
		fmt.Println("╚══════════════════════════════════════════════════╝")
	} else {
		fmt.Println("nansat derive complete")
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Recipe:      %s\n", m.Recipe)
	fmt.Printf("  Inputs:      %d (%s)\n", s.TotalInputs, formatBytes(s.TotalInputBytes))
	fmt.Printf("  Bands:       %d\n", s.TotalBands)
	fmt.Printf("  Outputs:     %d (%s)\n", s.TotalOutputs, formatBytes(s.TotalOutputBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d  (%d tiles of %d px per band)\n",
			m.BuildInfo.Workers, m.BuildInfo.Tiles, m.BuildInfo.BlockSize)
	}
	fmt.Println()

	names := make([]string, 0, len(m.Bands))
	for name := range m.Bands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("  Derived bands (min / mean / max):")
	for _, name := range names {
		b := m.Bands[name]
		fmt.Printf("    %-24s %-28s %10.4g %10.4g %10.4g",
			truncKey(name, 24), truncKey(b.Func, 28), b.Stats.Min, b.Stats.Mean, b.Stats.Max)
		if b.Stats.NaN > 0 {
			fmt.Printf("  (%d NaN)", b.Stats.NaN)
		}
		fmt.Println()
	}
	fmt.Println()

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    %s (%s)\n", manifest.FileName, formatBytes(int64(len(data))))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
