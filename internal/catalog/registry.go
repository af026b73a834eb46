package catalog

import (
	"fmt"
	"sort"
)

// defaultTemplateSegments controls cylinder template resolution.
const defaultTemplateSegments = 16

// Registry maps shape-type names to template meshes. It is filled once at
// startup and read-only afterwards, so concurrent exports can share it
// without locking. Unknown shape types are not an error: Lookup reports
// ok=false and the caller skips the anchor.
type Registry struct {
	templates map[string]TemplateMesh
}

// NewRegistry returns a registry preloaded with the built-in shape types.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]TemplateMesh)}
	for name, t := range builtinTemplates() {
		r.templates[name] = t
	}
	return r
}

// builtinTemplates generates the shapes the tool knows without any
// definition file. Caps and posts are cylinders with base on Y=0; brackets
// are boxes. Sizes are in the same length units as anchor positions.
func builtinTemplates() map[string]TemplateMesh {
	return map[string]TemplateMesh{
		"hs-cap":       genCylinder(0.25, 0.15, defaultTemplateSegments),
		"hs-cap-small": genCylinder(0.15, 0.10, defaultTemplateSegments),
		"hs-post":      genCylinder(0.08, 0.50, defaultTemplateSegments),
		"hs-bracket":   genBox(0.40, 0.10, 0.20),
	}
}

// Lookup returns the template for the given shape type. ok is false when the
// type is unknown; callers treat that as "no placement for this anchor".
func (r *Registry) Lookup(shapeType string) (TemplateMesh, bool) {
	t, ok := r.templates[shapeType]
	return t, ok
}

// Add registers a template under the given shape type, replacing any
// existing entry. The template is validated first; Add is only meant to be
// called during startup, before the registry is shared.
func (r *Registry) Add(shapeType string, t TemplateMesh) error {
	if shapeType == "" {
		return fmt.Errorf("template has empty shape type")
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("template %q: %w", shapeType, err)
	}
	r.templates[shapeType] = t
	return nil
}

// Types returns the registered shape-type names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
