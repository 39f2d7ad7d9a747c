package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"srcbundle/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bundler walks a project tree and drives the Processor over every file,
// producing one output artifact per run.
type Bundler struct {
	cfg     config.Config
	matcher *Matcher
	logger  *zap.Logger
}

// New compiles the configuration's patterns and returns a Bundler ready to
// run. Pattern compilation failures surface here, before any file is touched.
func New(cfg config.Config, logger *zap.Logger) (*Bundler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	matcher, err := NewMatcher(cfg.IncludePatterns, cfg.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}
	return &Bundler{cfg: cfg, matcher: matcher, logger: logger}, nil
}

// Matcher returns the compiled pattern matcher for this run.
func (b *Bundler) Matcher() *Matcher {
	return b.matcher
}

// Run truncates the artifact at outputPath and processes every file under
// projectPath exactly once, in directory-enumeration order. Files are
// processed strictly one at a time; the artifact has a single writer for the
// run. Per-file read errors are recorded in the Summary and do not stop the
// run. An untraversable project root or a failed artifact write is fatal.
func (b *Bundler) Run(projectPath, outputPath string) (*Summary, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	logger := b.logger.With(zap.String("runID", runID))

	logger.Info("Starting bundle run",
		zap.String("project", projectPath),
		zap.String("output", outputPath))

	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, fmt.Errorf("cannot traverse project path %s: %w", projectPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", projectPath)
	}

	art, err := CreateArtifact(outputPath, logger)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID, Output: outputPath}
	processor := NewProcessor(b.cfg, b.matcher, logger)

	walkErr := filepath.WalkDir(projectPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == projectPath {
				return err // root enumeration failure is fatal
			}
			logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}

		res, procErr := processor.Process(path, art)
		summary.add(res)
		return procErr // non-nil only on artifact write failure
	})
	if walkErr != nil {
		if closeErr := art.Close(); closeErr != nil {
			logger.Warn("Failed to close output artifact after aborted run", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("bundle run failed: %w", walkErr)
	}

	if err := art.Close(); err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(startTime)
	logger.Info("Bundle run complete",
		zap.String("output", outputPath),
		zap.Int("included", summary.Included),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}
