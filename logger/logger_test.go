package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", "", &buf)
	require.NoError(t, err)

	l.Info("maze generated", "seed", 42)
	l.Error("write failed", "path", "maze.txt")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="maze generated"`)
	assert.Contains(t, out, "seed=42")
	assert.Contains(t, out, "component=APP")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "path=maze.txt")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasPrefix(line, "[APP] "), line)
	}

	t.Run("coloured tag is written raw", func(t *testing.T) {
		var colored bytes.Buffer
		l, err := New("APP", config.ColorGreen, &colored)
		require.NoError(t, err)

		l.Info("maze written", "file", "maze.txt")

		out := colored.String()
		assert.True(t, strings.HasPrefix(out, config.ColorGreen+"[APP]"+config.ColorReset+" "), out)
		assert.NotContains(t, out, `\x1b`)
		assert.Contains(t, out, "component=APP")
		assert.Contains(t, out, "file=maze.txt")
	})

	t.Run("requires a name and writer", func(t *testing.T) {
		_, err := New("", "", &buf)
		assert.Error(t, err)
		_, err = New("APP", "", nil)
		assert.Error(t, err)
	})

	t.Run("nil logger is a no-op", func(t *testing.T) {
		var nilLogger *Logger
		assert.NotPanics(t, func() { nilLogger.Info("ignored") })
	})
}
