package manifest

import "github.com/an-ivanov/nansat/internal/raster"

// Manifest is the top-level report of a derive run.
type Manifest struct {
	Version     int             `json:"version"`
	GeneratedAt string          `json:"generated_at"`
	Recipe      string          `json:"recipe"`
	BasePath    string          `json:"base_path"`
	BuildInfo   *BuildInfo      `json:"build_info,omitempty"`
	Inputs      []Input         `json:"inputs"`
	Bands       map[string]Band `json:"bands"`
	Stack       *Output         `json:"stack,omitempty"` // all bands in one raw file
	Stats       Stats           `json:"stats"`
}

// BuildInfo captures run parameters for diagnostics.
type BuildInfo struct {
	Workers   int `json:"workers"`
	BlockSize int `json:"block_size"`
	Tiles     int `json:"tiles"` // tiles per band
}

// Input is one source file of the dataset.
type Input struct {
	Path   string   `json:"path"`
	Hash   string   `json:"hash"` // first 16 hex chars of xxhash64
	Size   int64    `json:"size"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Bands  []string `json:"bands"`
}

// Band describes one derived band and the files written for it.
type Band struct {
	Func     string            `json:"func"`
	Sources  []string          `json:"sources"`
	DataType string            `json:"data_type"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Stats    raster.Stats      `json:"stats"`
	Outputs  []Output          `json:"outputs"`
}

// Output is one encoded file of a band.
type Output struct {
	Format string `json:"format"` // "raw", "png", "jpeg", "tiff"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"`
	Path   string `json:"path"` // relative to base_path
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalInputs      int   `json:"total_inputs"`
	TotalBands       int   `json:"total_bands"`
	TotalOutputs     int   `json:"total_outputs"`
	NaNSamples       int   `json:"nan_samples,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest name inside an output directory.
const FileName = "nansat.manifest.json"
