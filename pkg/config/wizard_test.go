package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWizard(t *testing.T) {
	in := strings.NewReader(".py\n#\nrs\n//\ndone\n")
	var out bytes.Buffer

	cfg, err := RunWizard(in, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{`\.py$`, `\.rs$`}, cfg.IncludePatterns)
	assert.Equal(t, "#", cfg.CommentMarkers[".py"])
	assert.Equal(t, "//", cfg.CommentMarkers[".rs"])
	assert.Equal(t, Default().DelimiterTemplate, cfg.DelimiterTemplate)
	assert.Contains(t, out.String(), "Interactive Configuration Generator")
}

func TestRunWizardDoneImmediately(t *testing.T) {
	cfg, err := RunWizard(strings.NewReader("done\n"), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Empty(t, cfg.IncludePatterns)
	assert.Empty(t, cfg.CommentMarkers)
}

func TestRunWizardSkipsBlankExtension(t *testing.T) {
	cfg, err := RunWizard(strings.NewReader("\n.py\n#\nDONE\n"), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{`\.py$`}, cfg.IncludePatterns)
	assert.Equal(t, "#", cfg.CommentMarkers[".py"])
}

func TestRunWizardInputEndsEarly(t *testing.T) {
	_, err := RunWizard(strings.NewReader(".py\n"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunWizardMarkerlessExtension(t *testing.T) {
	// An empty marker means include the extension without comment stripping.
	cfg, err := RunWizard(strings.NewReader(".java\n\ndone\n"), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{`\.java$`}, cfg.IncludePatterns)
	_, present := cfg.CommentMarkers[".java"]
	assert.False(t, present)
}
