package export

import (
	"fmt"
	"time"
)

// Format selects the output syntax.
type Format string

const (
	FormatSTL Format = "stl"
	FormatOBJ Format = "obj"
	FormatPLY Format = "ply"
)

// ParseFormat returns the Format for a user-supplied string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSTL, FormatOBJ, FormatPLY:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want stl, obj, or ply)", s)
}

// Quality selects the marker cylinder resolution.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// ParseQuality returns the Quality for a user-supplied string.
func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case QualityLow, QualityMedium, QualityHigh:
		return Quality(s), nil
	}
	return "", fmt.Errorf("unknown quality %q (want low, medium, or high)", s)
}

// Segments returns the marker radial segment count for the quality level.
func (q Quality) Segments() int {
	switch q {
	case QualityLow:
		return 6
	case QualityHigh:
		return 12
	default:
		return 8
	}
}

// Config is one export call's settings. Callers supply every field; there are
// no implied defaults in the core. MergeGeometry collapses the per-instance
// and per-point groups of OBJ output into one group; STL output has no group
// concept, so the flag does not change it.
type Config struct {
	IncludeOriginal bool
	IncludeMatches  bool
	IncludePoints   bool
	MergeGeometry   bool
	Format          Format
	Quality         Quality

	// Now supplies the export timestamp written into the header comments.
	// nil means time.Now; tests inject a fixed clock so identical inputs
	// serialize byte-identically.
	Now func() time.Time
}

// Validate rejects configs with an unknown format or quality.
func (c Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if _, err := ParseQuality(string(c.Quality)); err != nil {
		return err
	}
	return nil
}

// timestamp returns the export time from the injected clock, or the wall
// clock when none was injected.
func (c Config) timestamp() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// describe renders the config the way it appears in header comments. Purely
// documentation; never parsed back.
func (c Config) describe() string {
	return fmt.Sprintf("includeOriginal=%t includeMatches=%t includePoints=%t mergeGeometry=%t format=%s quality=%s",
		c.IncludeOriginal, c.IncludeMatches, c.IncludePoints, c.MergeGeometry, c.Format, c.Quality)
}
