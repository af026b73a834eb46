package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshmark/internal/geom"
)

func TestSceneUpsert(t *testing.T) {
	t.Parallel()

	s := New()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Upsert(AnchorPoint{ID: "a", Position: geom.NewVec3(1, 0, 0), ShapeType: "hs-cap", CreatedAt: base})
	s.Upsert(AnchorPoint{ID: "b", Position: geom.NewVec3(0, 1, 0), ShapeType: "hs-post", CreatedAt: base.Add(time.Second)})
	require.Equal(t, 2, s.Len())

	// Same ID replaces the whole record.
	s.Upsert(AnchorPoint{ID: "a", Position: geom.NewVec3(5, 5, 5), ShapeType: "hs-cap-small", CreatedAt: base})
	require.Equal(t, 2, s.Len())

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, geom.Vec3{5, 5, 5}, snap[0].Position)
	assert.Equal(t, "hs-cap-small", snap[0].ShapeType)
}

func TestSceneSnapshotIsolated(t *testing.T) {
	t.Parallel()

	s := New()
	s.Upsert(AnchorPoint{ID: "a", Position: geom.NewVec3(1, 2, 3), ShapeType: "hs-cap", CreatedAt: time.Now()})

	snap := s.Snapshot()
	s.Upsert(AnchorPoint{ID: "a", Position: geom.NewVec3(9, 9, 9), ShapeType: "hs-cap", CreatedAt: time.Now()})
	s.Upsert(AnchorPoint{ID: "b", Position: geom.NewVec3(0, 0, 0), ShapeType: "hs-post", CreatedAt: time.Now()})

	require.Len(t, snap, 1)
	assert.Equal(t, geom.Vec3{1, 2, 3}, snap[0].Position)
}

func TestSceneSnapshotOrder(t *testing.T) {
	t.Parallel()

	s := New()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Upsert(AnchorPoint{ID: "late", CreatedAt: base.Add(time.Minute)})
	s.Upsert(AnchorPoint{ID: "early", CreatedAt: base})
	s.Upsert(AnchorPoint{ID: "tie-b", CreatedAt: base.Add(time.Second)})
	s.Upsert(AnchorPoint{ID: "tie-a", CreatedAt: base.Add(time.Second)})

	var ids []string
	for _, a := range s.Snapshot() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"early", "tie-a", "tie-b", "late"}, ids)
}

func TestSceneClearAndRemove(t *testing.T) {
	t.Parallel()

	s := New()
	s.Upsert(AnchorPoint{ID: "a"})
	s.Upsert(AnchorPoint{ID: "b"})

	s.Remove("a")
	assert.Equal(t, 1, s.Len())
	s.Remove("missing")
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Snapshot())
}
