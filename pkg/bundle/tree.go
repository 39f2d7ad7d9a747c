package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// GenerateTree renders an indented listing of the project tree, omitting
// paths that match an exclude pattern. The listing is written to a separate
// file from the output artifact so the artifact itself stays delimiter and
// content only.
func GenerateTree(projectPath string, matcher *Matcher, logger *zap.Logger) (string, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path %s: %w", projectPath, err)
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(fmt.Sprintf("%s/\n", absPath))

	subtree, err := generateTreeRecursively(absPath, absPath, matcher, "", logger)
	if err != nil {
		return "", err
	}
	if subtree != "" {
		treeBuilder.WriteString(subtree)
		treeBuilder.WriteString("\n")
	}
	return treeBuilder.String(), nil
}

// WriteTree generates the tree listing and writes it to outputPath.
func WriteTree(projectPath, outputPath string, matcher *Matcher, logger *zap.Logger) error {
	content, err := GenerateTree(projectPath, matcher, logger)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write tree file %s: %w", outputPath, err)
	}
	logger.Debug("Wrote tree listing", zap.String("path", outputPath))
	return nil
}

// generateTreeRecursively builds the tree structure for one directory level.
func generateTreeRecursively(directory, parentDir string, matcher *Matcher, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	// Directories first, then files, alphabetically.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var output []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		entryPath := filepath.Join(directory, entry.Name())
		relPath, relErr := filepath.Rel(parentDir, entryPath)
		if relErr != nil {
			relPath = entryPath
		}

		if matcher.Excluded(relPath) {
			logger.Debug("Skipping excluded path in tree", zap.String("path", entryPath))
			continue
		}

		if entry.IsDir() {
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))
			subtree, err := generateTreeRecursively(entryPath, parentDir, matcher, prefix+extension, logger)
			if err != nil {
				logger.Warn("Failed to generate subtree", zap.String("directory", entryPath), zap.Error(err))
				continue
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, fmt.Sprintf("%s%s%s", prefix, connector, entry.Name()))
		}
	}

	return strings.Join(output, "\n"), nil
}
