// Package cli wires the tool's commands: anchor management, catalog
// inspection, match scoring, and scene export.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"meshmark/internal/geom"
	"meshmark/internal/session"
)

// defaultSessionPath is the session database used when neither --session nor
// MESHMARK_SESSION is set.
const defaultSessionPath = "meshmark-session.db"

var sessionPath string

var rootCmd = &cobra.Command{
	Use:          "meshmark",
	Short:        "meshmark — place template meshes at anchor points and export STL/OBJ/PLY",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `meshmark keeps a session of anchor points on a base model, places
template meshes at them, and exports the scene as ASCII STL, indexed OBJ,
or ASCII PLY.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", "",
		"session database file (default meshmark-session.db, or $MESHMARK_SESSION)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSession opens the session store selected by --session, the
// MESHMARK_SESSION environment variable, or the default path, in that order.
func openSession() (*session.Store, error) {
	path := sessionPath
	if path == "" {
		path = os.Getenv("MESHMARK_SESSION")
	}
	if path == "" {
		path = defaultSessionPath
	}
	return session.Open(path)
}

// parsePoint parses "x,y,z" into a point.
func parsePoint(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("position %q: want x,y,z", s)
	}
	var p geom.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("position %q: %w", s, err)
		}
		p[i] = float32(f)
	}
	return p, nil
}
