package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-attendance-monitor/internal/util"
)

// LoadRoster reads the roster file at path, one participant name per line.
func LoadRoster(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer file.Close()

	names, err := ReadRoster(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	util.LogDebugf("Loaded %d roster names from %s", len(names), path)
	return names, nil
}

// ReadRoster reads one name per line. Blank lines and lines starting with
// '#' are ignored.
func ReadRoster(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return names, nil
}
