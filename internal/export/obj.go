package export

import (
	"bytes"
	"fmt"

	"meshmark/internal/marker"
)

// ToOBJ renders the input as indexed Wavefront OBJ text. One running 1-based
// vertex counter spans the whole stream, so every face line indexes into the
// union of all vertex blocks emitted before it; vertices are never shared
// between instances even when the geometry is identical.
//
// With MergeGeometry set, the per-instance and per-point group lines are
// replaced by a single group emitted before the first geometry block.
func ToOBJ(in Input, cfg Config) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Exported by meshmark\n")
	fmt.Fprintf(&buf, "# Exported: %s\n", cfg.timestamp().Format(timeFormat))
	fmt.Fprintf(&buf, "# Instances: %d\n", len(in.Instances))
	fmt.Fprintf(&buf, "# Anchor points: %d\n", len(in.Anchors))
	fmt.Fprintf(&buf, "# Config: %s\n", cfg.describe())
	if cfg.IncludeOriginal && in.Original != nil {
		fmt.Fprintf(&buf, "# Original geometry: %d bytes\n", len(in.Original))
	}

	// base is the running global counter: the number of vertices emitted so
	// far. Local to this call; a fresh counter per export keeps concurrent
	// exports independent.
	base := 0
	merged := false
	group := func(name string) {
		if !cfg.MergeGeometry {
			fmt.Fprintf(&buf, "g %s\n", name)
			return
		}
		if !merged {
			fmt.Fprintf(&buf, "g matched_scene\n")
			merged = true
		}
	}

	if cfg.IncludeMatches {
		for i, inst := range in.Instances {
			group(fmt.Sprintf("match_%d", i+1))
			for v := 0; v < inst.VertexCount(); v++ {
				p := inst.Vertex(v)
				fmt.Fprintf(&buf, "v %s %s %s\n", fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]))
			}
			for t := 0; t < inst.TriangleCount(); t++ {
				fmt.Fprintf(&buf, "f %d %d %d\n",
					base+int(inst.Faces[3*t])+1,
					base+int(inst.Faces[3*t+1])+1,
					base+int(inst.Faces[3*t+2])+1)
			}
			base += inst.VertexCount()
		}
	}

	if cfg.IncludePoints {
		segments := cfg.Quality.Segments()
		for i, a := range in.Anchors {
			group(fmt.Sprintf("point_%d", i+1))
			m := marker.Generate(a.Position, a.ShapeType, segments)
			for v := 0; v < m.VertexCount(); v++ {
				p := m.Vertex(v)
				fmt.Fprintf(&buf, "v %s %s %s\n", fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]))
			}
			for t := 0; t < m.TriangleCount(); t++ {
				fmt.Fprintf(&buf, "f %d %d %d\n",
					base+int(m.Faces[3*t])+1,
					base+int(m.Faces[3*t+1])+1,
					base+int(m.Faces[3*t+2])+1)
			}
			// 2 cap centers + 2 rings of vertices.
			base += 2 + 2*segments
		}
	}

	return buf.String()
}
