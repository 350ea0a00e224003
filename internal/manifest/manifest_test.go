package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/an-ivanov/nansat/internal/raster"
)

func sampleManifest() *Manifest {
	m := New("wind")
	m.BuildInfo = &BuildInfo{Workers: 4, BlockSize: 256, Tiles: 6}
	m.Inputs = []Input{{
		Path: "hirlam.raw", Hash: "0123456789abcdef", Size: 4000,
		Width: 25, Height: 20, Bands: []string{"u", "v"},
	}}
	m.Bands["windspeed"] = Band{
		Func:     "UVToMagnitude",
		Sources:  []string{"1", "2"},
		DataType: "Float32",
		Width:    25, Height: 20,
		Metadata: map[string]string{"units": "m/s"},
		Stats:    raster.Stats{Min: 0.5, Max: 14.2, Mean: 6.1, Valid: 498, NaN: 2},
		Outputs: []Output{
			{Format: "raw", Width: 25, Height: 20, Size: 2000, Hash: "aaaabbbbccccdddd", Path: "windspeed.25.20.aaaabbbb.raw"},
			{Format: "png", Width: 25, Height: 20, Size: 310, Hash: "1111222233334444", Path: "windspeed.25.20.11112222.png"},
		},
	}
	m.ComputeStats()
	return m
}

func TestManifestRoundtrip(t *testing.T) {
	m := sampleManifest()

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	m2, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Recipe != "wind" {
		t.Errorf("recipe: got %q", m2.Recipe)
	}
	if m2.BuildInfo == nil {
		t.Fatal("build_info missing")
	}
	if m2.BuildInfo.BlockSize != 256 {
		t.Errorf("block_size: got %d", m2.BuildInfo.BlockSize)
	}

	b, ok := m2.Bands["windspeed"]
	if !ok {
		t.Fatal("band windspeed missing")
	}
	if b.Func != "UVToMagnitude" {
		t.Errorf("func: got %q", b.Func)
	}
	if b.Stats.Max != 14.2 || b.Stats.NaN != 2 {
		t.Errorf("stats: got %+v", b.Stats)
	}
	if len(b.Outputs) != 2 {
		t.Errorf("outputs: got %d", len(b.Outputs))
	}

	if m2.Stats.TotalBands != 1 {
		t.Errorf("total_bands: got %d", m2.Stats.TotalBands)
	}
	if m2.Stats.TotalOutputs != 2 {
		t.Errorf("total_outputs: got %d", m2.Stats.TotalOutputs)
	}
	if m2.Stats.TotalOutputBytes != 2310 {
		t.Errorf("total_output_bytes: got %d", m2.Stats.TotalOutputBytes)
	}
	if m2.Stats.TotalInputBytes != 4000 {
		t.Errorf("total_input_bytes: got %d", m2.Stats.TotalInputBytes)
	}
	if m2.Stats.NaNSamples != 2 {
		t.Errorf("nan_samples: got %d", m2.Stats.NaNSamples)
	}
}

func TestManifestVersion(t *testing.T) {
	m := New("v-test")
	if m.Version != SupportedManifestVersion {
		t.Errorf("new manifest version: got %d, want %d", m.Version, SupportedManifestVersion)
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2026-01-01T00:00:00Z",
		"recipe": "test",
		"base_path": "./",
		"future_field": "should be ignored",
		"build_info": { "workers": 8, "block_size": 128, "tiles": 1, "new_flag": true },
		"inputs": [],
		"bands": {},
		"stats": { "total_input_bytes": 0, "total_output_bytes": 0, "total_bands": 0, "new_stat": 42 }
	}`

	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.Version != 1 {
		t.Errorf("version: got %d", m.Version)
	}
	if m.BuildInfo == nil || m.BuildInfo.Workers != 8 {
		t.Error("build_info not parsed correctly")
	}
}

func TestStackCounted(t *testing.T) {
	m := sampleManifest()
	m.Stack = &Output{Format: "raw", Width: 25, Height: 20, Size: 4000, Hash: "ffff", Path: "wind.raw"}
	m.ComputeStats()
	if m.Stats.TotalOutputs != 3 {
		t.Errorf("total_outputs: got %d, want 3", m.Stats.TotalOutputs)
	}
	if m.Stats.TotalOutputBytes != 6310 {
		t.Errorf("total_output_bytes: got %d, want 6310", m.Stats.TotalOutputBytes)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	m := sampleManifest()
	for _, o := range m.Bands["windspeed"].Outputs {
		if err := os.WriteFile(filepath.Join(dir, o.Path), make([]byte, o.Size), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if errs := Validate(m, dir); len(errs) != 0 {
		t.Errorf("valid manifest reported errors: %v", errs)
	}

	// Truncate one file and break the stats.
	png := m.Bands["windspeed"].Outputs[1].Path
	if err := os.WriteFile(filepath.Join(dir, png), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	m.Stats.TotalBands = 7
	errs := Validate(m, dir)
	joined := strings.Join(errs, "\n")
	for _, want := range []string{"size mismatch", "stats.total_bands mismatch"} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors %q do not mention %q", joined, want)
		}
	}
}

func TestValidateMissingFile(t *testing.T) {
	m := sampleManifest()
	errs := Validate(m, t.TempDir())
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	for _, e := range errs {
		if !strings.Contains(e, "file not found") {
			t.Errorf("unexpected error %q", e)
		}
	}
}
