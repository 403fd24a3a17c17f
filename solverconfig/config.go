package solverconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile holds the solver-facing knobs the CLI exposes as flags, plus a
// couple of additive ones (Precision, Compare) that are natural to
// persist alongside the rest even though no flag sets them directly.
type Profile struct {
	Solver struct {
		// Function selects the cost operator: "sum" or "max".
		Function string `yaml:"function"`
		// Weight selects the arc-weight strategy: "diff", "grad", or "const".
		Weight string `yaml:"weight"`
		// Optimized selects the bucket-queue engine over the heap engine.
		Optimized bool `yaml:"optimized"`
		// EightConnected selects 8-connectivity over the default of 4.
		EightConnected bool `yaml:"eightConnected"`
		// Precision is the discretization granularity for non-integer
		// costs under the bucket engine.
		Precision float64 `yaml:"precision"`
	} `yaml:"solver"`

	Seeds struct {
		// Automatic is the N in -a/--automatic N.
		Automatic int `yaml:"automatic"`
	} `yaml:"seeds"`

	Output struct {
		// Path is the output image file, -o/--output.
		Path string `yaml:"path"`
		// CostPath is the cost-image output file, --cost-output. Left
		// empty, no cost image is written.
		CostPath string `yaml:"costPath"`
		// Compare is saved and loaded with the profile; the CLI does not
		// read it, and only its --compare flag selects a comparison run.
		Compare bool `yaml:"compare"`
	} `yaml:"output"`
}

// DefaultProfile returns a Profile with the baseline CLI defaults: sum
// cost, intensity-difference weight, heap engine, 4-connectivity, 4
// automatic seeds, output to resultado_ift.png.
func DefaultProfile() *Profile {
	p := &Profile{}
	p.Solver.Function = "sum"
	p.Solver.Weight = "diff"
	p.Solver.Optimized = false
	p.Solver.EightConnected = false
	p.Solver.Precision = 0.1
	p.Seeds.Automatic = 4
	p.Output.Path = "resultado_ift.png"
	return p
}

// Load reads a YAML profile from path, starting from DefaultProfile and
// overwriting only the fields present in the file. A missing file is not
// an error: Load returns the default profile unchanged.
func Load(path string) (*Profile, error) {
	profile := DefaultProfile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return profile, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("solverconfig: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("solverconfig: parsing %q: %w", path, err)
	}
	return profile, nil
}

// Save writes profile to path as YAML, creating parent directories as
// needed.
func Save(profile *Profile, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("solverconfig: creating directory for %q: %w", path, err)
		}
	}
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("solverconfig: marshaling profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("solverconfig: writing %q: %w", path, err)
	}
	return nil
}
