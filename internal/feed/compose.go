package feed

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Compose lays topics out as tape text: every topic sits between two
// delimiters, so each one is selectable. Occurrences of delim inside a
// topic are replaced by a space. No topics gives an empty tape.
func Compose(topics []Topic, delim rune) string {
	if len(topics) == 0 {
		return ""
	}
	d := string(delim)

	var b strings.Builder
	b.WriteString(d)
	for _, t := range topics {
		b.WriteByte(' ')
		b.WriteString(strings.ReplaceAll(t.Text, d, " "))
		b.WriteByte(' ')
		b.WriteString(d)
	}
	return b.String()
}

// ParseLines reads one topic per line. Blank lines and lines starting with
// "//" are skipped; the rest are trimmed.
func ParseLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read topics: %w", err)
	}
	return out, nil
}
