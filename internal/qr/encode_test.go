package qr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	code, err := Encode("WIFI:T:WPA;S:MyNet;P:pass1234;;")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	bitmap := code.Bitmap()
	if len(bitmap) == 0 {
		t.Fatal("Bitmap() is empty")
	}
	for i, row := range bitmap {
		if len(row) != len(bitmap) {
			t.Fatalf("row %d has length %d, matrix side is %d (not square)", i, len(row), len(bitmap))
		}
	}
	if code.Size() != len(bitmap) {
		t.Errorf("Size() = %d, want %d", code.Size(), len(bitmap))
	}
	if code.Version() < 1 || code.Version() > 40 {
		t.Errorf("Version() = %d, want 1..40", code.Version())
	}

	// The symbol must contain both dark and light modules.
	dark, light := 0, 0
	for _, row := range bitmap {
		for _, module := range row {
			if module {
				dark++
			} else {
				light++
			}
		}
	}
	if dark == 0 || light == 0 {
		t.Errorf("bitmap has %d dark and %d light modules, want both nonzero", dark, light)
	}
}

func TestEncodeTooLong(t *testing.T) {
	// Version 40 tops out well below 8KB of byte-mode data.
	_, err := Encode(strings.Repeat("x", 8192))
	if err == nil {
		t.Fatal("Encode() expected error for oversized payload")
	}
	if !errors.Is(err, ErrEncodingFailed) {
		t.Errorf("Encode() error = %v, want ErrEncodingFailed", err)
	}
}

func TestPNG(t *testing.T) {
	code, err := Encode("WIFI:T:WPA;S:MyNet;P:pass1234;;")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data, err := code.PNG(8)
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("PNG() output does not start with PNG signature: % x", data[:8])
	}
}
