package bundle

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// Artifact is the single aggregate output file for one run. It is truncated
// on open, appended to once per included file, and guarded by an exclusive
// file lock so that concurrent runs cannot interleave writes.
type Artifact struct {
	path   string
	file   *os.File
	writer *bufio.Writer
	lock   *flock.Flock
	logger *zap.Logger
}

// CreateArtifact locks the output path and truncates (or creates) the file.
// A prior run's content is fully discarded. Returns an error if another run
// already holds the lock or the file cannot be opened.
func CreateArtifact(path string, logger *zap.Logger) (*Artifact, error) {
	lock := flock.New(path + ".lock")
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock output artifact %s: %w", path, err)
	}
	if !acquired {
		return nil, fmt.Errorf("output artifact %s is in use by another run", path)
	}

	file, err := os.Create(path)
	if err != nil {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			logger.Warn("Failed to release artifact lock", zap.String("path", path), zap.Error(unlockErr))
		}
		return nil, fmt.Errorf("failed to create output artifact %s: %w", path, err)
	}

	logger.Debug("Created output artifact", zap.String("path", path))
	return &Artifact{
		path:   path,
		file:   file,
		writer: bufio.NewWriter(file),
		lock:   lock,
		logger: logger,
	}, nil
}

// Append writes block to the artifact. The caller passes delimiter and
// content as one block so a failure never leaves a delimiter without its
// content.
func (a *Artifact) Append(block string) error {
	if _, err := a.writer.WriteString(block); err != nil {
		return fmt.Errorf("failed to append to output artifact %s: %w", a.path, err)
	}
	return nil
}

// Path returns the artifact's filesystem path.
func (a *Artifact) Path() string {
	return a.path
}

// Close flushes buffered content, closes the file, and releases the lock.
func (a *Artifact) Close() error {
	flushErr := a.writer.Flush()
	closeErr := a.file.Close()
	if unlockErr := a.lock.Unlock(); unlockErr != nil {
		a.logger.Warn("Failed to release artifact lock", zap.String("path", a.path), zap.Error(unlockErr))
	}

	if flushErr != nil {
		return fmt.Errorf("failed to flush output artifact %s: %w", a.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output artifact %s: %w", a.path, closeErr)
	}
	return nil
}
