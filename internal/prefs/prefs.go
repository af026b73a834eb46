package prefs

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PrefsPath is the path to the preferences file, relative to the process
// working directory.
const PrefsPath = "config/meshmark.yaml"

// Prefs holds tool-level defaults for export calls: the format and quality
// used when the command line does not override them, and which parts of the
// scene exports include. Persisted across runs; per-session anchor data is
// separate and handled by the session store.
type Prefs struct {
	Format          string `yaml:"format"`
	Quality         string `yaml:"quality"`
	IncludeMatches  bool   `yaml:"include_matches"`
	IncludePoints   bool   `yaml:"include_points"`
	IncludeOriginal bool   `yaml:"include_original"`
	MergeGeometry   bool   `yaml:"merge_geometry"`
	TemplateDefs    string `yaml:"template_defs,omitempty"`
}

// Default returns the stock preferences: STL at medium quality, matches and
// points both included.
func Default() Prefs {
	return Prefs{
		Format:         "stl",
		Quality:        "medium",
		IncludeMatches: true,
		IncludePoints:  true,
	}
}

// Load reads preferences from config/meshmark.yaml. A missing or invalid
// file returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/meshmark.yaml, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(PrefsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
