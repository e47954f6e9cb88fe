package render

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/wifiqr/internal/logging"
	"github.com/muurk/wifiqr/internal/qr"
)

// Format selects the output rendering of an encoded symbol.
type Format int

const (
	// FormatASCII renders half-block text art for terminals.
	FormatASCII Format = iota
	// FormatPNG renders raster image bytes.
	FormatPNG
	// FormatSVG renders vector markup text.
	FormatSVG
)

// pngScale is the pixel width of one module in PNG output.
const pngScale = 8

// svgScale is the user-unit width of one module in SVG output.
const svgScale = 10

// String returns the CLI-facing name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return "ascii"
	}
}

// ParseFormat parses a CLI format value. Accepted values are "ascii", "png"
// and "svg", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ascii":
		return FormatASCII, nil
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return FormatASCII, fmt.Errorf("unknown format %q (valid: ascii, png, svg)", s)
	}
}

// Render writes the symbol to w in the requested format. Write failures are
// returned verbatim wrapped with context (e.g. a broken pipe on stdout).
func Render(w io.Writer, code *qr.Code, format Format) error {
	logging.Debug("rendering QR symbol",
		zap.Stringer("format", format),
		zap.Int("modules", code.Size()),
	)

	var err error
	switch format {
	case FormatPNG:
		err = renderPNG(w, code)
	case FormatSVG:
		_, err = io.WriteString(w, SVG(code.Bitmap()))
	default:
		_, err = io.WriteString(w, ASCII(code.Bitmap()))
	}
	if err != nil {
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	return nil
}

// ASCII renders the module matrix as half-block text art. Each output rune
// covers two vertically stacked modules, which keeps the symbol roughly
// square in common terminal fonts. Dark modules print as blocks on the
// terminal's default background.
func ASCII(bitmap [][]bool) string {
	darkAt := func(y, x int) bool {
		if y >= len(bitmap) || x >= len(bitmap[y]) {
			return false
		}
		return bitmap[y][x]
	}

	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := 0; x < len(bitmap); x++ {
			top := darkAt(y, x)
			bottom := darkAt(y+1, x)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SVG renders the module matrix as standalone SVG markup: a white
// background with one black rect per dark module. The quiet zone is already
// part of the matrix.
func SVG(bitmap [][]bool) string {
	side := len(bitmap) * svgScale

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`, side, side, side, side)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`, side, side)
	b.WriteByte('\n')
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#000000"/>`,
					x*svgScale, y*svgScale, svgScale, svgScale)
				b.WriteByte('\n')
			}
		}
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func renderPNG(w io.Writer, code *qr.Code) error {
	data, err := code.PNG(pngScale)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
