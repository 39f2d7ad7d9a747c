package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"srcbundle/pkg/config"

	"go.uber.org/zap"
)

// Processor handles a single candidate file: filter decision, read, comment
// stripping, delimiter formatting, and the append to the output artifact.
type Processor struct {
	cfg     config.Config
	matcher *Matcher
	logger  *zap.Logger
}

// NewProcessor creates a Processor over an already-compiled matcher.
func NewProcessor(cfg config.Config, matcher *Matcher, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{cfg: cfg, matcher: matcher, logger: logger}
}

// Process runs one candidate through the pipeline. The returned Result
// records the per-file outcome; read failures are recovered here and never
// abort the run. The returned error is non-nil only when the artifact append
// fails, which is fatal to the whole run since no further output can be
// produced.
func (p *Processor) Process(path string, art *Artifact) (Result, error) {
	if !p.matcher.ShouldProcess(path) {
		p.logger.Debug("Skipping file", zap.String("path", path))
		return Result{Path: path, Status: StatusSkipped}, nil
	}

	marker := p.cfg.CommentMarkers[filepath.Ext(path)]

	raw, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn("Failed to read file",
			zap.String("path", path),
			zap.Error(err))
		return Result{
			Path:   path,
			Status: StatusFailed,
			Err:    fmt.Errorf("failed to read %s: %w", path, err),
		}, nil
	}

	cleaned := Clean(string(raw), marker)
	block := p.cfg.Delimiter(path) + cleaned + "\n"

	// Delimiter and content go out in a single append: a file's block is
	// written whole or not at all.
	if err := art.Append(block); err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}, err
	}

	p.logger.Debug("Processed file",
		zap.String("path", path),
		zap.String("marker", marker),
		zap.Int("rawBytes", len(raw)),
		zap.Int("cleanedBytes", len(cleaned)))
	return Result{Path: path, Status: StatusIncluded}, nil
}
