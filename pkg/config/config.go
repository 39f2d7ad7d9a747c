// Package config defines the bundle configuration: include/exclude patterns,
// per-extension comment markers, and the output delimiter template.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// PathPlaceholder is the token in DelimiterTemplate replaced by the file path.
const PathPlaceholder = "{path}"

// Config is the immutable per-run configuration consumed by the pipeline.
type Config struct {
	// IncludePatterns are unanchored regular expressions; a file must match
	// at least one to be eligible.
	IncludePatterns []string `yaml:"include_patterns"`

	// ExcludePatterns are unanchored regular expressions; files matching any
	// are skipped unconditionally, overriding the include patterns.
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// CommentMarkers maps a file extension (leading dot included, e.g. ".py")
	// to its single-line comment prefix. Extensions absent from the map get
	// no comment stripping.
	CommentMarkers map[string]string `yaml:"comment_markers"`

	// DelimiterTemplate is written before each file's cleaned content, with
	// PathPlaceholder substituted by the file's path.
	DelimiterTemplate string `yaml:"delimiter_template"`
}

// Default returns the stock configuration covering common source extensions.
// It is a pure factory: each call returns a fresh value, so callers can
// mutate the result without affecting other runs.
func Default() Config {
	return Config{
		IncludePatterns: []string{
			`\.py$`, `\.js$`, `\.tsx$`, `\.java$`, `\.cpp$`, `\.c$`,
			`\.h$`, `\.cs$`, `\.php$`, `\.rb$`, `\.go$`,
		},
		ExcludePatterns: []string{
			`\.git`, `__pycache__`, `\.md$`, `\.csv$`, `\.pdf$`, `venv`,
		},
		CommentMarkers: map[string]string{
			".py":  "#",
			".js":  "//",
			".tsx": "//",
		},
		DelimiterTemplate: "\n<<<FILENAME:{path}>>>\n",
	}
}

// Delimiter renders the delimiter for path.
func (c Config) Delimiter(path string) string {
	return strings.ReplaceAll(c.DelimiterTemplate, PathPlaceholder, path)
}

// Load reads a configuration file. The file is parsed as YAML, which also
// accepts the JSON config files the tool historically used. A missing file
// is not an error: the defaults are returned with a diagnostic. A file that
// exists but cannot be read or parsed is an error.
func Load(path string, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("Configuration file not found, using default settings",
				zap.String("path", path))
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	// A config file may omit the delimiter; fall back to the default rather
	// than writing empty delimiters.
	if cfg.DelimiterTemplate == "" {
		cfg.DelimiterTemplate = Default().DelimiterTemplate
	}
	if cfg.CommentMarkers == nil {
		cfg.CommentMarkers = map[string]string{}
	}

	logger.Debug("Loaded configuration",
		zap.String("path", path),
		zap.Int("includePatterns", len(cfg.IncludePatterns)),
		zap.Int("excludePatterns", len(cfg.ExcludePatterns)))
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}
	return nil
}
