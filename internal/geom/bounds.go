package geom

// BoundingBox is an axis-aligned box, Min ≤ Max on every axis once at least
// one point has been added.
type BoundingBox struct {
	Min Vec3
	Max Vec3
}

// NewBoundingBox returns an inverted box so that the first Extend sets both
// corners. A box that was never extended must not be used for queries.
func NewBoundingBox() BoundingBox {
	const big = 3.4e38
	return BoundingBox{
		Min: Vec3{big, big, big},
		Max: Vec3{-big, -big, -big},
	}
}

// Extend grows the box to enclose p.
func (b *BoundingBox) Extend(p Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Translate returns the box shifted by offset. Size is unchanged.
func (b BoundingBox) Translate(offset Vec3) BoundingBox {
	return BoundingBox{
		Min: b.Min.Add(offset),
		Max: b.Max.Add(offset),
	}
}

// Size returns the extent of the box on each axis.
func (b BoundingBox) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// BoundsOf returns the box enclosing a flat vertex buffer (x,y,z triples).
// An empty buffer returns the zero box.
func BoundsOf(vertices []float32) BoundingBox {
	if len(vertices) < 3 {
		return BoundingBox{}
	}
	box := NewBoundingBox()
	for i := 0; i+2 < len(vertices); i += 3 {
		box.Extend(Vec3{vertices[i], vertices[i+1], vertices[i+2]})
	}
	return box
}
