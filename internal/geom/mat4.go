package geom

// Mat4 is a 4×4 homogeneous transform in column-major order. Placement today
// only ever writes the translation column; the rotation and scale slots are
// reserved for when templates need orientation, not assumed identity forever.
type Mat4 [16]float32

// Identity returns the identity transform.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Translation returns the transform that moves points by t.
func Translation(t Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = t[0], t[1], t[2]
	return m
}

// TranslationPart returns the translation column of m.
func (m Mat4) TranslationPart() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Apply transforms the point p by m. With a translation-only matrix this is a
// componentwise add; the full multiply is kept so filled-in rotation/scale
// slots take effect without callers changing.
func (m Mat4) Apply(p Vec3) Vec3 {
	return Vec3{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}
