package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// New creates an empty manifest with defaults.
func New(recipeName string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Recipe:      recipeName,
		BasePath:    "./",
		Bands:       make(map[string]Band),
	}
}

// ComputeStats recalculates aggregate statistics from inputs and bands.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalInputs = len(m.Inputs)
	for _, in := range m.Inputs {
		s.TotalInputBytes += in.Size
	}
	s.TotalBands = len(m.Bands)
	for _, b := range m.Bands {
		s.TotalOutputs += len(b.Outputs)
		s.NaNSamples += b.Stats.NaN
		for _, o := range b.Outputs {
			s.TotalOutputBytes += o.Size
		}
	}
	if m.Stack != nil {
		s.TotalOutputs++
		s.TotalOutputBytes += m.Stack.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file. Map keys are sorted by
// encoding/json, so output is stable.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// Read parses a manifest file.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
