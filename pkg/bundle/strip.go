package bundle

import "strings"

// Clean removes single-line comments and blank lines from content.
//
// When marker is non-empty, every line is truncated at the first occurrence
// of the marker. The truncation is purely textual: a marker appearing inside
// a string literal is still treated as a comment start. This is a documented
// limitation of the line-based approach, not language-aware parsing.
//
// After any marker pass, lines that are empty or contain only whitespace are
// dropped and the survivors are joined with "\n" in their original order.
// Clean is idempotent: applying it twice yields the same result as once.
func Clean(content, marker string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var kept []string
	for _, line := range lines {
		if marker != "" {
			line = stripLine(line, marker)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// stripLine truncates line at the first occurrence of marker. Trailing
// whitespace before the marker is preserved.
func stripLine(line, marker string) string {
	if idx := strings.Index(line, marker); idx >= 0 {
		return line[:idx]
	}
	return line
}
