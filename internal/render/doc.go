// Package render converts an encoded QR symbol into one of the supported
// output formats: terminal text art (half-block glyphs), PNG bytes, or SVG
// markup. Renderers consume the module matrix only; they know nothing about
// the payload that produced it.
package render
