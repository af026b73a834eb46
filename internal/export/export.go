// Package export serializes placed template instances and anchor-point
// markers into text mesh formats: ASCII STL, indexed OBJ, and ASCII PLY.
// Every writer is a pure single pass over its inputs; the only state is a
// vertex-index counter local to one call, so independent exports can run
// concurrently against a shared catalog.
package export

import (
	"fmt"

	"meshmark/internal/place"
	"meshmark/internal/scene"
)

// timeFormat is the header timestamp layout.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// solidName names the STL solid and the merged OBJ group.
const solidName = "MatchedScene"

// Input is the geometry snapshot one export call works from. The call only
// borrows it: nothing is mutated and nothing is retained after return.
// Original is the raw base-model file, reported by byte length only; it is
// never parsed or re-emitted.
type Input struct {
	Instances []place.PlacedInstance
	Anchors   []scene.AnchorPoint
	Original  []byte
}

// Serialize renders the input in the configured format and returns the full
// text buffer. The buffer is complete on return; there is no partial output.
func Serialize(in Input, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	switch cfg.Format {
	case FormatSTL:
		return ToSTL(in, cfg), nil
	case FormatOBJ:
		return ToOBJ(in, cfg), nil
	case FormatPLY:
		return ToPLY(in, cfg), nil
	}
	// Validate covers the enum; this is unreachable.
	return "", fmt.Errorf("unknown format %q", cfg.Format)
}

// fmtFloat renders one coordinate with the fixed 6-decimal precision every
// format shares.
func fmtFloat(f float32) string {
	return fmt.Sprintf("%.6f", f)
}
