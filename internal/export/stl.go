package export

import (
	"bytes"
	"fmt"

	"meshmark/internal/geom"
	"meshmark/internal/marker"
)

// ToSTL renders the input as one ASCII STL solid. Header comments carry the
// export metadata; STL readers that reject comment lines can strip them, the
// geometry body is strict ASCII STL with exactly one solid/endsolid pair.
func ToSTL(in Input, cfg Config) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "solid %s\n", solidName)
	fmt.Fprintf(&buf, "# Exported: %s\n", cfg.timestamp().Format(timeFormat))
	fmt.Fprintf(&buf, "# Instances: %d\n", len(in.Instances))
	fmt.Fprintf(&buf, "# Anchor points: %d\n", len(in.Anchors))
	fmt.Fprintf(&buf, "# Config: %s\n", cfg.describe())
	if cfg.IncludeOriginal && in.Original != nil {
		// The base model itself is never re-embedded, only measured.
		fmt.Fprintf(&buf, "# Original geometry: %d bytes\n", len(in.Original))
	}

	if cfg.IncludeMatches {
		for _, inst := range in.Instances {
			for t := 0; t < inst.TriangleCount(); t++ {
				v1 := inst.Vertex(int(inst.Faces[3*t]))
				v2 := inst.Vertex(int(inst.Faces[3*t+1]))
				v3 := inst.Vertex(int(inst.Faces[3*t+2]))
				writeFacet(&buf, geom.FaceNormal(v1, v2, v3), v1, v2, v3)
			}
		}
	}

	if cfg.IncludePoints {
		segments := cfg.Quality.Segments()
		for _, a := range in.Anchors {
			m := marker.Generate(a.Position, a.ShapeType, segments)
			writeMarkerFacets(&buf, m)
		}
	}

	fmt.Fprintf(&buf, "endsolid %s\n", solidName)
	return buf.String()
}

// writeFacet emits one facet block: normal line, outer loop with exactly
// three vertex lines, endloop, endfacet.
func writeFacet(buf *bytes.Buffer, n, v1, v2, v3 geom.Vec3) {
	fmt.Fprintf(buf, "facet normal %s %s %s\n", fmtFloat(n[0]), fmtFloat(n[1]), fmtFloat(n[2]))
	fmt.Fprintf(buf, "  outer loop\n")
	for _, v := range []geom.Vec3{v1, v2, v3} {
		fmt.Fprintf(buf, "    vertex %s %s %s\n", fmtFloat(v[0]), fmtFloat(v[1]), fmtFloat(v[2]))
	}
	fmt.Fprintf(buf, "  endloop\n")
	fmt.Fprintf(buf, "endfacet\n")
}

// writeMarkerFacets emits a marker cylinder's triangles with the marker
// normal rules: literal (0,-1,0) for the bottom cap, (0,1,0) for the top
// cap, and the segment's outward radial bisector for both triangles of each
// side quad. The marker's fixed face order (bottom fan, top fan, side pairs)
// is what makes the rule selectable by triangle index.
func writeMarkerFacets(buf *bytes.Buffer, m marker.Mesh) {
	bottomNormal := geom.Vec3{0, -1, 0}
	topNormal := geom.Vec3{0, 1, 0}

	for t := 0; t < m.TriangleCount(); t++ {
		var n geom.Vec3
		switch {
		case t < m.Segments:
			n = bottomNormal
		case t < 2*m.Segments:
			n = topNormal
		default:
			n = m.SideNormal((t - 2*m.Segments) / 2)
		}
		v1 := m.Vertex(int(m.Faces[3*t]))
		v2 := m.Vertex(int(m.Faces[3*t+1]))
		v3 := m.Vertex(int(m.Faces[3*t+2]))
		writeFacet(buf, n, v1, v2, v3)
	}
}
