package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStatement(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource(t *testing.T) {
	src := NewFileSource()
	ctx := context.Background()

	t.Run("lines span all pages", func(t *testing.T) {
		path := writeStatement(t, "page one line\f01/04/2024 NEFT 100.00 1,100.00 Cr")

		lines, err := src.Lines(ctx, path)
		require.NoError(t, err)
		assert.Contains(t, lines, "page one line")
		assert.Contains(t, lines, "01/04/2024 NEFT 100.00 1,100.00 Cr")
	})

	t.Run("header lines stop after two pages", func(t *testing.T) {
		path := writeStatement(t, "HDFC BANK\fM/S. TAWAKKAL\fpage three only")

		header, err := src.HeaderLines(ctx, path)
		require.NoError(t, err)
		assert.Contains(t, header, "HDFC BANK")
		assert.Contains(t, header, "M/S. TAWAKKAL")
		assert.NotContains(t, header, "page three only")
	})

	t.Run("windows line endings are normalized", func(t *testing.T) {
		path := writeStatement(t, "one\r\ntwo")

		lines, err := src.Lines(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := src.Lines(ctx, filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("cancelled context errors", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Lines(cancelled, writeStatement(t, "x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
