// Package qr is the boundary to the QR symbol encoder.
//
// It wraps github.com/skip2/go-qrcode behind a small Code type exposing the
// encoded symbol as a matrix of boolean module states (true = dark). Version
// selection, error-correction coding and matrix construction all happen
// inside the library; nothing in this repository builds QR symbols itself.
package qr
