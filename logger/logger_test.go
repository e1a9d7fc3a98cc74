package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("requires a prefix", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
	})

	t.Run("tags lines with prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("carved")
		l.Warning("cache miss")
		l.With(map[string]any{"seed": 42}).Error("boom")

		out := buf.String()
		assert.Contains(t, out, "level=info")
		assert.Contains(t, out, "level=warning")
		assert.Contains(t, out, "level=error")
		assert.Contains(t, out, "component=MAZE")
		assert.Contains(t, out, "seed=42")
		assert.Contains(t, out, "carved")
	})
}
