package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "nansat",
	Short: "Derived raster bands from pixel functions",
	Long: `nansat computes derived bands (wind speed and direction, radar
incidence angle, sigma0 VV, complex amplitude and phase, ...) from the
bands of raster inputs using a catalog of pixel functions.

Recipes name the pixel function and source bands of every derived band.
Outputs are raw sample files, grayscale quicklooks and a JSON manifest.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute runs the root command. Interrupts cancel running pipelines.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"nansat %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[nansat] "+format+"\n", args...)
	}
}
