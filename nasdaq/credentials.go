package nasdaq

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadKeyFile reads an API key from a credentials file: the first
// non-blank line that is not a '#' comment, trimmed.
func ReadKeyFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no API key found in %q", path)
}
