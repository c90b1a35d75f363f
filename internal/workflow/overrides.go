package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// overridesFile is the optional sidecar that refines generated output without
// touching the script.
const overridesFile = "overrides.yaml"

// ProductOverride supplies editorial metadata for one ranked product.
type ProductOverride struct {
	Name     string   `yaml:"name"`
	Benefits []string `yaml:"benefits"`
}

// Overrides carries per-project editorial tweaks loaded from overrides.yaml.
// A missing file yields the zero value; generation proceeds with script-derived
// names and no benefit overlays.
type Overrides struct {
	Title     string                  `yaml:"title"`
	Signature string                  `yaml:"signature"`
	Products  map[int]ProductOverride `yaml:"products"`
}

// LoadOverrides reads the overrides sidecar from the project directory.
func LoadOverrides(projectDir string) (Overrides, error) {
	var out Overrides

	data, err := os.ReadFile(filepath.Join(projectDir, overridesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("read %s: %w", overridesFile, err)
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("parse %s: %w", overridesFile, err)
	}
	return out, nil
}

func (o Overrides) productNames() map[int]string {
	if len(o.Products) == 0 {
		return nil
	}
	names := make(map[int]string, len(o.Products))
	for rank, p := range o.Products {
		if p.Name != "" {
			names[rank] = p.Name
		}
	}
	return names
}

func (o Overrides) benefits() map[int][]string {
	if len(o.Products) == 0 {
		return nil
	}
	benefits := make(map[int][]string, len(o.Products))
	for rank, p := range o.Products {
		if len(p.Benefits) > 0 {
			benefits[rank] = p.Benefits
		}
	}
	return benefits
}
