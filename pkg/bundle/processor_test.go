package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"srcbundle/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProcessor(t *testing.T, cfg config.Config) *Processor {
	t.Helper()
	m, err := NewMatcher(cfg.IncludePatterns, cfg.ExcludePatterns)
	require.NoError(t, err)
	return NewProcessor(cfg, m, zap.NewNop())
}

func newTestArtifact(t *testing.T) *Artifact {
	t.Helper()
	art, err := CreateArtifact(filepath.Join(t.TempDir(), "out.txt"), zap.NewNop())
	require.NoError(t, err)
	return art
}

func readArtifact(t *testing.T, art *Artifact) string {
	t.Helper()
	require.NoError(t, art.Close())
	data, err := os.ReadFile(art.Path())
	require.NoError(t, err)
	return string(data)
}

func TestProcessIncluded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1  # comment\n\n  \ny = 2\n"), 0644))

	cfg := config.Config{
		IncludePatterns:   []string{`\.py$`},
		CommentMarkers:    map[string]string{".py": "#"},
		DelimiterTemplate: "\n<<<FILENAME:{path}>>>\n",
	}
	p := newTestProcessor(t, cfg)
	art := newTestArtifact(t)

	res, err := p.Process(path, art)
	require.NoError(t, err)
	assert.Equal(t, StatusIncluded, res.Status)
	assert.Equal(t, path, res.Path)

	want := "\n<<<FILENAME:" + path + ">>>\n" + "x = 1  \ny = 2\n"
	assert.Equal(t, want, readArtifact(t, art))
}

func TestProcessSkippedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0644))

	cfg := config.Config{
		IncludePatterns:   []string{`\.py$`},
		DelimiterTemplate: "\n<<<FILENAME:{path}>>>\n",
	}
	p := newTestProcessor(t, cfg)
	art := newTestArtifact(t)

	res, err := p.Process(path, art)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, res.Status)
	assert.Empty(t, readArtifact(t, art))
}

func TestProcessReadFailureIsRecovered(t *testing.T) {
	// The file vanished between enumeration and read.
	path := filepath.Join(t.TempDir(), "gone.py")

	cfg := config.Config{
		IncludePatterns:   []string{`\.py$`},
		DelimiterTemplate: "\n<<<FILENAME:{path}>>>\n",
	}
	p := newTestProcessor(t, cfg)
	art := newTestArtifact(t)

	res, err := p.Process(path, art)
	require.NoError(t, err, "read failures must not be fatal to the run")
	assert.Equal(t, StatusFailed, res.Status)
	assert.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), path)

	// No partial delimiter may be left behind.
	assert.Empty(t, readArtifact(t, art))
}

func TestProcessExtensionWithoutMarker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.java")
	require.NoError(t, os.WriteFile(path, []byte("int x; // keep\n\nint y;\n"), 0644))

	cfg := config.Config{
		IncludePatterns:   []string{`\.java$`},
		CommentMarkers:    map[string]string{},
		DelimiterTemplate: "\n<<<FILENAME:{path}>>>\n",
	}
	p := newTestProcessor(t, cfg)
	art := newTestArtifact(t)

	res, err := p.Process(path, art)
	require.NoError(t, err)
	assert.Equal(t, StatusIncluded, res.Status)

	// Comment text untouched, blank line removed.
	want := "\n<<<FILENAME:" + path + ">>>\n" + "int x; // keep\nint y;\n"
	assert.Equal(t, want, readArtifact(t, art))
}
