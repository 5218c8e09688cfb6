package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type contentKind int

const (
	kindText contentKind = iota
	kindLines
)

// Content is what WriteText writes: either a single text blob or a sequence
// of lines, each terminated by a newline.
type Content struct {
	kind  contentKind
	text  string
	lines []string
}

// Text wraps a text blob written verbatim.
func Text(s string) Content {
	return Content{kind: kindText, text: s}
}

// Lines wraps lines written one per row.
func Lines(lines []string) Content {
	return Content{kind: kindLines, lines: lines}
}

// WriteText writes content to path, creating the parent directory.
func WriteText(path string, c Content) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	var data string
	switch c.kind {
	case kindText:
		data = c.text
	case kindLines:
		var b strings.Builder
		for _, line := range c.lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		data = b.String()
	default:
		return fmt.Errorf("unknown content kind %d", c.kind)
	}

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
