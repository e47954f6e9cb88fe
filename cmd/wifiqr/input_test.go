package main

import (
	"strings"
	"testing"
)

func TestReadSSIDLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline terminated", "MyNet\n", "MyNet"},
		{"crlf terminated", "MyNet\r\n", "MyNet"},
		{"no trailing newline", "MyNet", "MyNet"},
		{"only first line is used", "MyNet\nSecondLine\n", "MyNet"},
		{"empty input", "", ""},
		{"interior spaces kept", "My Net\n", "My Net"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSSIDLine(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("readSSIDLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readSSIDLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
