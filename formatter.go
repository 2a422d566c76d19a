package docfind

import "strings"

// FormatMatches renders matches one per line using Match.String.
func FormatMatches(matches []*Match) string {
	if len(matches) == 0 {
		return ""
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.String())
	}

	return strings.Join(lines, "\n")
}
