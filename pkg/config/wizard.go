package config

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// RunWizard interactively builds a configuration by prompting for file
// extensions and their comment markers. Each entered extension becomes an
// include pattern anchored to the end of the path. Input ends when the user
// types "done". Reading and writing go through in and out so the wizard is
// testable without a terminal.
func RunWizard(in io.Reader, out io.Writer) (Config, error) {
	cfg := Config{
		IncludePatterns:   []string{},
		ExcludePatterns:   []string{},
		CommentMarkers:    map[string]string{},
		DelimiterTemplate: Default().DelimiterTemplate,
	}

	prompt := color.New(color.FgCyan)
	prompt.Fprintln(out, "Interactive Configuration Generator")

	scanner := bufio.NewScanner(in)
	for {
		prompt.Fprint(out, "Enter a file extension to include (e.g., .py) or 'done' to finish: ")
		ext, err := readLine(scanner)
		if err != nil {
			return Config{}, err
		}
		if strings.EqualFold(ext, "done") {
			break
		}
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		prompt.Fprintf(out, "Enter the comment symbol for %s (e.g., #): ", ext)
		marker, err := readLine(scanner)
		if err != nil {
			return Config{}, err
		}

		cfg.IncludePatterns = append(cfg.IncludePatterns, regexp.QuoteMeta(ext)+"$")
		if marker != "" {
			cfg.CommentMarkers[ext] = marker
		}
	}

	return cfg, nil
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("input closed before configuration was complete")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
