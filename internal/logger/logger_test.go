package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendsMemoryAndFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "test.txt")
	l := NewAt(path)

	l.Log("exported scene.stl")
	l.Logf("placed %d instances", 3)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "exported scene.stl"))
	assert.True(t, strings.HasSuffix(lines[1], "placed 3 instances"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exported scene.stl")
	assert.Contains(t, string(data), "placed 3 instances")
}

func TestLinesReturnsCopy(t *testing.T) {
	t.Parallel()

	l := NewAt(filepath.Join(t.TempDir(), "test.txt"))
	l.Log("one")

	lines := l.Lines()
	lines[0] = "mutated"
	assert.NotEqual(t, "mutated", l.Lines()[0])
}
