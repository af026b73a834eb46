package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshmark/internal/geom"
)

func TestParsePoint(t *testing.T) {
	t.Parallel()

	t.Run("plain triple", func(t *testing.T) {
		t.Parallel()
		p, err := parsePoint("1,2,3")
		require.NoError(t, err)
		assert.Equal(t, geom.Vec3{1, 2, 3}, p)
	})

	t.Run("spaces and negatives", func(t *testing.T) {
		t.Parallel()
		p, err := parsePoint(" -1.5, 0 , 2.25 ")
		require.NoError(t, err)
		assert.Equal(t, geom.Vec3{-1.5, 0, 2.25}, p)
	})

	t.Run("wrong arity", func(t *testing.T) {
		t.Parallel()
		_, err := parsePoint("1,2")
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Parallel()
		_, err := parsePoint("1,two,3")
		assert.Error(t, err)
	})
}
