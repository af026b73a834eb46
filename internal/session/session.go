// Package session persists a scene's anchor points in a SQLite file so a
// marking session survives between tool invocations. The geometry core never
// touches this package; exports work from an in-memory snapshot loaded here.
package session

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"meshmark/internal/geom"
	"meshmark/internal/scene"
)

// schemaSQL creates the anchor_points table on open.
//
//go:embed schema.sql
var schemaSQL string

// Store is a session database handle.
type Store struct {
	*sql.DB
}

// Open opens (or creates) the session database at path and applies the
// schema. Use ":memory:" for an ephemeral session.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply session schema: %w", err)
	}
	return &Store{db}, nil
}

// Upsert stores the anchor, replacing any existing record with the same ID.
// An empty ID gets a fresh UUID; a zero CreatedAt gets the current time. The
// stored record is returned.
func (s *Store) Upsert(a scene.AnchorPoint) (scene.AnchorPoint, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := s.Exec(`
		INSERT OR REPLACE INTO anchor_points (id, x, y, z, shape_type, created_at_ns)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Position[0], a.Position[1], a.Position[2], a.ShapeType, a.CreatedAt.UnixNano())
	if err != nil {
		return scene.AnchorPoint{}, fmt.Errorf("upsert anchor %s: %w", a.ID, err)
	}
	return a, nil
}

// List returns every anchor in creation order (ID as tiebreak).
func (s *Store) List() ([]scene.AnchorPoint, error) {
	rows, err := s.Query(`
		SELECT id, x, y, z, shape_type, created_at_ns
		FROM anchor_points
		ORDER BY created_at_ns, id`)
	if err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}
	defer rows.Close()

	var out []scene.AnchorPoint
	for rows.Next() {
		var a scene.AnchorPoint
		var x, y, z float64
		var createdNs int64
		if err := rows.Scan(&a.ID, &x, &y, &z, &a.ShapeType, &createdNs); err != nil {
			return nil, fmt.Errorf("scan anchor: %w", err)
		}
		a.Position = geom.Vec3{float32(x), float32(y), float32(z)}
		a.CreatedAt = time.Unix(0, createdNs).UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

// Remove deletes one anchor by ID. Missing IDs are not an error.
func (s *Store) Remove(id string) error {
	if _, err := s.Exec(`DELETE FROM anchor_points WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove anchor %s: %w", id, err)
	}
	return nil
}

// Clear deletes every anchor.
func (s *Store) Clear() error {
	if _, err := s.Exec(`DELETE FROM anchor_points`); err != nil {
		return fmt.Errorf("clear anchors: %w", err)
	}
	return nil
}

// Count returns the number of stored anchors.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.QueryRow(`SELECT COUNT(*) FROM anchor_points`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count anchors: %w", err)
	}
	return n, nil
}

// LoadScene builds an in-memory scene from the stored anchors.
func (s *Store) LoadScene() (*scene.Scene, error) {
	anchors, err := s.List()
	if err != nil {
		return nil, err
	}
	sc := scene.New()
	for _, a := range anchors {
		sc.Upsert(a)
	}
	return sc, nil
}
