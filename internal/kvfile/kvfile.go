// Package kvfile loads small "key = value" files. It exists to exercise the
// container end to end: typed syntax errors, context layers and lazy
// context on the success path.
package kvfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	anyerr "github.com/xgx-io/xgx-anyerr"
)

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: expected key = value, got %q", e.Line, e.Text)
}

// Parse reads key = value pairs. Blank lines and lines starting with '#' are
// ignored. Duplicate keys are rejected.
func Parse(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, val, ok := strings.Cut(text, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, anyerr.New(&SyntaxError{Line: line, Text: text})
		}
		_, dup := out[key]
		if err := anyerr.Ensuref(!dup, "line %d: duplicate key %q", line, key); err != nil {
			return nil, err
		}
		out[key] = strings.TrimSpace(val)
	}
	if err := sc.Err(); err != nil {
		return nil, anyerr.Wrap(err, "failed to scan input")
	}
	return out, nil
}

// Load opens path and parses it.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, anyerr.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, anyerr.WithContext(err, func() string {
			return fmt.Sprintf("failed to load %s", path)
		})
	}
	return m, nil
}
