package parsing

import (
	"regexp"
	"strings"
)

var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// splitBlocks splits a section into paragraph blocks separated by blank lines.
// Each block is returned as its non-empty, trimmed lines.
func splitBlocks(section string) [][]string {
	blocks := make([][]string, 0)
	for _, raw := range blankLine.Split(section, -1) {
		lines := nonEmptyLines(raw)
		if len(lines) > 0 {
			blocks = append(blocks, lines)
		}
	}
	return blocks
}

func nonEmptyLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// isBulletLine reports whether a line starts with a list marker
func isBulletLine(line string) bool {
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "▪ ", "– "} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
