package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/wifiqr/internal/qr"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"ascii", FormatASCII, false},
		{"ASCII", FormatASCII, false},
		{"png", FormatPNG, false},
		{"svg", FormatSVG, false},
		{"SVG", FormatSVG, false},
		{"jpeg", FormatASCII, true},
		{"jpg", FormatASCII, true},
		{"", FormatASCII, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestASCII(t *testing.T) {
	tests := []struct {
		name   string
		bitmap [][]bool
		want   string
	}{
		{
			name: "both rows dark",
			bitmap: [][]bool{
				{true, false},
				{true, false},
			},
			want: "█ \n",
		},
		{
			name: "top dark bottom light",
			bitmap: [][]bool{
				{true, true},
				{false, true},
			},
			want: "▀█\n",
		},
		{
			name: "odd height pads bottom with light",
			bitmap: [][]bool{
				{true},
			},
			want: "▀\n",
		},
		{
			name: "bottom only",
			bitmap: [][]bool{
				{false, false},
				{true, false},
			},
			want: "▄ \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ASCII(tt.bitmap); got != tt.want {
				t.Errorf("ASCII() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSVG(t *testing.T) {
	bitmap := [][]bool{
		{true, false},
		{false, true},
	}
	got := SVG(bitmap)

	if !strings.HasPrefix(got, "<svg") {
		t.Errorf("SVG() should start with <svg, got %q", got[:10])
	}
	if !strings.Contains(got, "</svg>") {
		t.Error("SVG() missing closing tag")
	}
	// Background plus one rect per dark module.
	if n := strings.Count(got, "<rect"); n != 3 {
		t.Errorf("SVG() has %d rects, want 3 (background + 2 dark modules)", n)
	}
	if !strings.Contains(got, `x="10" y="10"`) {
		t.Error("SVG() missing rect for module at (1,1)")
	}
}

func TestRenderEndToEnd(t *testing.T) {
	code, err := qr.Encode("WIFI:T:WPA;S:MyNet;P:pass1234;;")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	t.Run("ascii", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, code, FormatASCII); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		out := buf.String()
		if out == "" {
			t.Fatal("Render() produced no output")
		}
		if lines := strings.Count(out, "\n"); lines < 2 {
			t.Errorf("ascii output has %d lines, want multi-line", lines)
		}
		if !strings.ContainsRune(out, '█') {
			t.Error("ascii output contains no block glyphs")
		}
	})

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, code, FormatPNG); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Error("png output missing PNG signature")
		}
	})

	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, code, FormatSVG); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.HasPrefix(buf.String(), "<svg") {
			t.Error("svg output missing <svg prefix")
		}
	})
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRenderWriteFailure(t *testing.T) {
	code, err := qr.Encode("WIFI:T:WPA;S:MyNet;P:pass1234;;")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if err := Render(failWriter{}, code, FormatASCII); err == nil {
		t.Error("Render() should surface write failures")
	}
}
