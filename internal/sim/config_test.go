package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	t.Run("rejects zero groups", func(t *testing.T) {
		cfg := Default()
		cfg.Groups = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects zero tables", func(t *testing.T) {
		cfg := Default()
		cfg.Tables = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects negative delays", func(t *testing.T) {
		cfg := Default()
		cfg.Eat.Mean = Duration{-time.Second}
		assert.Error(t, cfg.Validate())

		cfg = Default()
		cfg.Cook.Dev = Duration{-time.Millisecond}
		assert.Error(t, cfg.Validate())
	})

	t.Run("fewer tables than groups is legal", func(t *testing.T) {
		cfg := Default()
		cfg.Groups = 10
		cfg.Tables = 1
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("file overrides defaults, rest keeps them", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "restaurant.toml")
		content := `
groups = 8

[travel]
mean = "10ms"
dev = "2ms"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Groups)
		assert.Equal(t, Default().Tables, cfg.Tables)
		assert.Equal(t, 10*time.Millisecond, cfg.Travel.Mean.Duration)
		assert.Equal(t, 2*time.Millisecond, cfg.Travel.Dev.Duration)
		assert.Equal(t, Default().Eat, cfg.Eat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "restaurant.toml")
		require.NoError(t, os.WriteFile(path, []byte("[eat]\nmean = \"fast\"\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
