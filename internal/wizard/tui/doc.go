// Package tui implements the interactive credential wizard.
//
// The wizard is a bubbletea program with two screens coordinated by
// AppModel:
//
//   - Form: SSID and password text inputs, auth type, hidden-network and
//     output format selectors, plus an output file field for the png and
//     svg formats. Enter runs the payload/encode/render pipeline;
//     validation errors are shown inline.
//   - Result: the rendered half-block QR code, the payload string, the
//     written file path (for png/svg), and any advisory passphrase
//     findings. "e" returns to the form with values intact.
//
// Entered passwords exist only in process memory for the lifetime of the
// program; nothing but the requested image file is written to disk.
package tui
