package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TemplateDef is the YAML definition for one custom shape type, e.g.:
//
//	templates:
//	  - type: hs-cap-wide
//	    kind: cylinder
//	    radius: 0.35
//	    height: 0.12
//	  - type: hs-plate
//	    kind: box
//	    size: [0.6, 0.05, 0.6]
//
// Kind selects the generator; box uses Size (width, height, depth), cylinder
// uses Radius/Height and optionally Segments (default 16).
type TemplateDef struct {
	Type     string     `yaml:"type"`
	Kind     string     `yaml:"kind"`
	Size     [3]float32 `yaml:"size,omitempty"`
	Radius   float32    `yaml:"radius,omitempty"`
	Height   float32    `yaml:"height,omitempty"`
	Segments int        `yaml:"segments,omitempty"`
}

// defFile is the top-level document of a template definition file.
type defFile struct {
	Templates []TemplateDef `yaml:"templates"`
}

// LoadDefs reads a YAML template definition file and registers every entry.
// Each definition is validated as it is built; the first bad entry aborts the
// load with an error naming the shape type.
func (r *Registry) LoadDefs(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template defs: %w", err)
	}
	var file defFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse template defs %s: %w", path, err)
	}
	for _, def := range file.Templates {
		t, err := buildDef(def)
		if err != nil {
			return err
		}
		if err := r.Add(def.Type, t); err != nil {
			return err
		}
	}
	return nil
}

// buildDef generates the mesh for one definition.
func buildDef(def TemplateDef) (TemplateMesh, error) {
	switch def.Kind {
	case "box":
		if def.Size[0] <= 0 || def.Size[1] <= 0 || def.Size[2] <= 0 {
			return TemplateMesh{}, fmt.Errorf("template %q: box size must be positive on all axes", def.Type)
		}
		return genBox(def.Size[0], def.Size[1], def.Size[2]), nil
	case "cylinder":
		if def.Radius <= 0 || def.Height <= 0 {
			return TemplateMesh{}, fmt.Errorf("template %q: cylinder radius and height must be positive", def.Type)
		}
		segments := def.Segments
		if segments == 0 {
			segments = defaultTemplateSegments
		}
		if segments < 3 {
			return TemplateMesh{}, fmt.Errorf("template %q: cylinder needs at least 3 segments", def.Type)
		}
		return genCylinder(def.Radius, def.Height, segments), nil
	default:
		return TemplateMesh{}, fmt.Errorf("template %q: unknown kind %q", def.Type, def.Kind)
	}
}
