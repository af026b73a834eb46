package export

import (
	"bytes"
	"fmt"

	"meshmark/internal/marker"
)

// ToPLY renders the input as ASCII PLY 1.0. PLY needs total vertex and face
// counts in the header, so the pass runs in the same order as OBJ (instances
// then markers) after summing the counts up front. Indices are 0-based per
// the PLY spec; the same per-call running counter rules apply.
func ToPLY(in Input, cfg Config) string {
	segments := cfg.Quality.Segments()

	totalVerts, totalFaces := 0, 0
	if cfg.IncludeMatches {
		for _, inst := range in.Instances {
			totalVerts += inst.VertexCount()
			totalFaces += inst.TriangleCount()
		}
	}
	if cfg.IncludePoints {
		totalVerts += len(in.Anchors) * (2 + 2*segments)
		totalFaces += len(in.Anchors) * 4 * segments
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "ply\n")
	fmt.Fprintf(&buf, "format ascii 1.0\n")
	fmt.Fprintf(&buf, "comment Exported by meshmark\n")
	fmt.Fprintf(&buf, "comment Exported: %s\n", cfg.timestamp().Format(timeFormat))
	fmt.Fprintf(&buf, "comment Instances: %d\n", len(in.Instances))
	fmt.Fprintf(&buf, "comment Anchor points: %d\n", len(in.Anchors))
	fmt.Fprintf(&buf, "comment Config: %s\n", cfg.describe())
	if cfg.IncludeOriginal && in.Original != nil {
		fmt.Fprintf(&buf, "comment Original geometry: %d bytes\n", len(in.Original))
	}
	fmt.Fprintf(&buf, "element vertex %d\n", totalVerts)
	fmt.Fprintf(&buf, "property float x\n")
	fmt.Fprintf(&buf, "property float y\n")
	fmt.Fprintf(&buf, "property float z\n")
	fmt.Fprintf(&buf, "element face %d\n", totalFaces)
	fmt.Fprintf(&buf, "property list uchar int vertex_indices\n")
	fmt.Fprintf(&buf, "end_header\n")

	// Vertex blocks, in the same order the face pass assumes.
	markers := make([]marker.Mesh, 0, len(in.Anchors))
	if cfg.IncludeMatches {
		for _, inst := range in.Instances {
			for v := 0; v < inst.VertexCount(); v++ {
				p := inst.Vertex(v)
				fmt.Fprintf(&buf, "%s %s %s\n", fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]))
			}
		}
	}
	if cfg.IncludePoints {
		for _, a := range in.Anchors {
			m := marker.Generate(a.Position, a.ShapeType, segments)
			markers = append(markers, m)
			for v := 0; v < m.VertexCount(); v++ {
				p := m.Vertex(v)
				fmt.Fprintf(&buf, "%s %s %s\n", fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]))
			}
		}
	}

	base := 0
	if cfg.IncludeMatches {
		for _, inst := range in.Instances {
			for t := 0; t < inst.TriangleCount(); t++ {
				fmt.Fprintf(&buf, "3 %d %d %d\n",
					base+int(inst.Faces[3*t]),
					base+int(inst.Faces[3*t+1]),
					base+int(inst.Faces[3*t+2]))
			}
			base += inst.VertexCount()
		}
	}
	for _, m := range markers {
		for t := 0; t < m.TriangleCount(); t++ {
			fmt.Fprintf(&buf, "3 %d %d %d\n",
				base+int(m.Faces[3*t]),
				base+int(m.Faces[3*t+1]),
				base+int(m.Faces[3*t+2]))
		}
		base += m.VertexCount()
	}

	return buf.String()
}
