package cmd

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptLine(t *testing.T) {
	t.Run("returns trimmed input", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("  /tmp/project  \n"))
		got, err := promptLine(reader, "path: ", ".")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/project", got)
	})

	t.Run("empty input yields fallback", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("\n"))
		got, err := promptLine(reader, "path: ", ".")
		require.NoError(t, err)
		assert.Equal(t, ".", got)
	})

	t.Run("closed input is an error", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader(""))
		_, err := promptLine(reader, "path: ", ".")
		assert.Error(t, err)
	})
}
