package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readSSIDLine reads the SSID as a single line from r, for pipeline usage
// like 'echo MyNet | wifiqr'. Trailing CR/LF is stripped; anything after
// the first line is ignored.
func readSSIDLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read SSID from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
