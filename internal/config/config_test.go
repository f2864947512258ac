package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1000, cfg.Game.MaxEntities)
	assert.Equal(t, 16*time.Millisecond, cfg.Game.TickRate.Std())
	assert.Equal(t, 60, cfg.Game.TargetFPS)
	assert.Equal(t, 80.0, cfg.Board.CardWidth)
	assert.Equal(t, 120.0, cfg.Board.CardHeight)
	assert.Equal(t, 25.0, cfg.Board.StackOffsetY)
	assert.Equal(t, 0.7, cfg.Board.DragOpacity)
	assert.Equal(t, 1000, cfg.Board.DragZBase)
	assert.Equal(t, 5.0, cfg.Board.DragThreshold)
	assert.Equal(t, RecyclePreserve, cfg.Rules.RecycleOrder)
	assert.True(t, cfg.Rules.AutoReveal)
	require.NoError(t, cfg.validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
max_entities = 500
tick_rate = "33ms"

[rules]
recycle_order = "reverse"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Game.MaxEntities)
	assert.Equal(t, 33*time.Millisecond, cfg.Game.TickRate.Std())
	assert.Equal(t, RecycleReverse, cfg.Rules.RecycleOrder)
	// Untouched sections keep their defaults.
	assert.Equal(t, 80.0, cfg.Board.CardWidth)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown recycle order", "[rules]\nrecycle_order = \"random\"\n"},
		{"non-positive entities", "[game]\nmax_entities = 0\n"},
		{"opacity out of range", "[board]\ndrag_opacity = 1.5\n"},
		{"bad duration", "[game]\ntick_rate = \"soon\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
