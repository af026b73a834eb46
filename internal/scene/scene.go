package scene

import (
	"sort"
	"time"

	"github.com/jinzhu/copier"

	"meshmark/internal/geom"
)

// AnchorPoint is one user-designated location on the base model. ID is unique
// within a session; ShapeType names a template-catalog entry (an unknown type
// just means no template placement for this anchor). Records are replaced
// whole on update, never patched field by field.
type AnchorPoint struct {
	ID        string
	Position  geom.Vec3
	ShapeType string
	CreatedAt time.Time
}

// Scene holds the current session's anchor points keyed by ID. The scene is
// owned by the session layer; export borrows a Snapshot so a running export
// never sees later edits.
type Scene struct {
	anchors map[string]AnchorPoint
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{anchors: make(map[string]AnchorPoint)}
}

// Upsert inserts the anchor or replaces the existing record with the same ID.
func (s *Scene) Upsert(a AnchorPoint) {
	s.anchors[a.ID] = a
}

// Remove deletes the anchor with the given ID. Missing IDs are a no-op.
func (s *Scene) Remove(id string) {
	delete(s.anchors, id)
}

// Clear removes every anchor.
func (s *Scene) Clear() {
	s.anchors = make(map[string]AnchorPoint)
}

// Len returns the number of anchors.
func (s *Scene) Len() int {
	return len(s.anchors)
}

// Snapshot returns a deep copy of the anchors ordered by creation time (ID as
// tiebreak, so the order is stable for equal timestamps). The copy is what an
// export call iterates; edits made after Snapshot do not reach it.
func (s *Scene) Snapshot() []AnchorPoint {
	out := make([]AnchorPoint, 0, len(s.anchors))
	for _, a := range s.anchors {
		var c AnchorPoint
		if err := copier.CopyWithOption(&c, &a, copier.Option{DeepCopy: true}); err != nil {
			// AnchorPoint has no unexported or recursive fields; Copy cannot
			// fail on it. Fall back to the value copy if it ever does.
			c = a
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
