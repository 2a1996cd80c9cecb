package checklist

import "strings"

// SplitBulkLines parses newline-delimited pasted text into item texts.
// Lines are trimmed and empties dropped; order is preserved.
func SplitBulkLines(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
