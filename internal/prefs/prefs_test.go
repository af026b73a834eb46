package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from a temp directory since PrefsPath is relative.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(orig))
	})
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chdirTemp(t)

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	// Load must not create the file.
	_, statErr := os.Stat(PrefsPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadInvalidFileReturnsDefaults(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(PrefsPath), 0755))
	require.NoError(t, os.WriteFile(PrefsPath, []byte("{not yaml"), 0644))

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveRoundTrip(t *testing.T) {
	chdirTemp(t)

	want := Prefs{
		Format:         "obj",
		Quality:        "high",
		IncludeMatches: true,
		MergeGeometry:  true,
		TemplateDefs:   "templates.yaml",
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
