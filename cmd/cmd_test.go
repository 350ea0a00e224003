package cmd

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/an-ivanov/nansat/internal/manifest"
	"github.com/an-ivanov/nansat/internal/raster"
	"github.com/an-ivanov/nansat/pixfunc"
	"github.com/google/go-cmp/cmp"
)

func writeWind(t *testing.T, path string) {
	t.Helper()
	u := raster.NewBand("u", pixfunc.Float32, 8, 6)
	v := raster.NewBand("v", pixfunc.Float32, 8, 6)
	ub, vb := u.Buffer(0, 0), v.Buffer(0, 0)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			ub.Put(y, x, float64(x-4))
			vb.Put(y, x, float64(y-3))
		}
	}
	if _, err := raster.WriteRaw(path, []*raster.Band{u, v}, raster.BSQ); err != nil {
		t.Fatal(err)
	}
}

func TestDeriveValidateStats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wind.raw")
	writeWind(t, input)
	out := filepath.Join(dir, "out")

	rootCmd.SetArgs([]string{"derive", "--recipe", "wind", "--out", out,
		"--format", "png,tiff", "--widths", "4", "--block", "3", "--interleave", "bsq", input})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("derive: %v", err)
	}

	manifestPath := filepath.Join(out, manifest.FileName)
	m, err := manifest.Read(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Bands) != 3 {
		t.Errorf("bands: got %d, want 3", len(m.Bands))
	}
	if len(m.Inputs) != 1 {
		t.Fatalf("inputs: got %d, want 1", len(m.Inputs))
	}
	if diff := cmp.Diff([]string{"u", "v"}, m.Inputs[0].Bands); diff != "" {
		t.Errorf("input bands (-want +got):\n%s", diff)
	}
	// raw, png@4, tiff@4 per band plus the stack.
	if m.Stats.TotalOutputs != 10 {
		t.Errorf("total_outputs: got %d, want 10", m.Stats.TotalOutputs)
	}
	if m.BuildInfo == nil || m.BuildInfo.Tiles != 6 {
		t.Errorf("build_info: got %+v", m.BuildInfo)
	}

	rootCmd.SetArgs([]string{"validate", manifestPath})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("validate: %v", err)
	}
	rootCmd.SetArgs([]string{"stats", out})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("stats: %v", err)
	}
	rootCmd.SetArgs([]string{"funcs"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("funcs: %v", err)
	}
}

func TestLoadRecipe(t *testing.T) {
	defer func(name, file string) { deriveRecipe, deriveRecipeFile = name, file }(deriveRecipe, deriveRecipeFile)

	deriveRecipe, deriveRecipeFile = "", ""
	if _, err := loadRecipe(); err == nil {
		t.Error("expected error without a recipe")
	}
	deriveRecipe = "nosuch"
	if _, err := loadRecipe(); err == nil {
		t.Error("expected error for unknown recipe")
	}
	deriveRecipe = "radarsat2"
	r, err := loadRecipe()
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "radarsat2" || len(r.Bands) != 2 {
		t.Errorf("got %+v", r)
	}
}

func TestTruncKey(t *testing.T) {
	if got := truncKey("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncKey("a/very/long/band/name", 10); got != "...nd/name" {
		t.Errorf("got %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func writeGray(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 100
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadInputsExtent(t *testing.T) {
	defer func(w, h int) { deriveWidth, deriveHeight = w, h }(deriveWidth, deriveHeight)

	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")
	writeGray(t, a, 20, 10)
	writeGray(t, b, 40, 20)

	tests := []struct {
		width, height int
		wantW, wantH  int
		wantErr       string
	}{
		{0, 0, 20, 10, ""},
		{10, 5, 10, 5, ""},
		{20, 0, 0, 0, "must be given together"},
		{0, 20, 0, 0, "must be given together"},
		{-4, 5, 0, 0, "must be given together"},
	}
	for _, tt := range tests {
		deriveWidth, deriveHeight = tt.width, tt.height
		ds, inputs, err := loadInputs([]string{a, b})
		if tt.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("%dx%d: got error %v, want %q", tt.width, tt.height, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%dx%d: %v", tt.width, tt.height, err)
			continue
		}
		if ds.Width != tt.wantW || ds.Height != tt.wantH || len(ds.Bands) != 2 {
			t.Errorf("%dx%d: got %dx%d with %d bands, want %dx%d with 2",
				tt.width, tt.height, ds.Width, ds.Height, len(ds.Bands), tt.wantW, tt.wantH)
		}
		if got := inputs[1].Width; got != tt.wantW {
			t.Errorf("%dx%d: second input width: got %d, want %d", tt.width, tt.height, got, tt.wantW)
		}
		if re, _ := ds.Bands[1].At(0, 0); re != 100 {
			t.Errorf("%dx%d: resampled sample: got %v, want 100", tt.width, tt.height, re)
		}
	}
}

func TestTypeKind(t *testing.T) {
	tests := []struct {
		t    pixfunc.DataType
		want string
	}{
		{pixfunc.Byte, "unsigned int"},
		{pixfunc.Int16, "signed int"},
		{pixfunc.Float32, "float"},
		{pixfunc.CInt16, "complex signed int"},
		{pixfunc.CFloat64, "complex float"},
	}
	for _, tt := range tests {
		if got := typeKind(tt.t); got != tt.want {
			t.Errorf("typeKind(%s): got %q, want %q", tt.t, got, tt.want)
		}
	}
}
