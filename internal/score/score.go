// Package score defines the pluggable confidence strategy for placed
// instances. The tool ships one deterministic heuristic; a real registration
// algorithm can be swapped in behind the same interface without touching the
// placement or export code.
package score

import (
	"meshmark/internal/marker"
	"meshmark/internal/place"
)

// Scorer rates how plausible a placement is. Score returns a value in [0, 1];
// implementations must be deterministic for identical inputs.
type Scorer interface {
	Score(inst place.PlacedInstance, shapeType string) float32
}

// BoundsScorer scores a placement by comparing the template's footprint to
// the marker pin footprint for the anchor's shape type: a template sized
// close to its pin is a more plausible fit for the designated point than one
// that dwarfs it. Ratio of the smaller to the larger extent, so the score is
// symmetric and lands in [0, 1].
type BoundsScorer struct{}

func (BoundsScorer) Score(inst place.PlacedInstance, shapeType string) float32 {
	size := inst.Bounds.Size()
	footprint := size[0]
	if size[2] > footprint {
		footprint = size[2]
	}
	pin := 2 * marker.RadiusFor(shapeType)
	if footprint <= 0 || pin <= 0 {
		return 0
	}
	if footprint < pin {
		return footprint / pin
	}
	return pin / footprint
}
