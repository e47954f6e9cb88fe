// Package wifi models Wi-Fi network credentials and serializes them into
// the configuration payload format understood by QR-scanning devices.
//
// # Payload Format
//
// The payload follows the widely supported WIFI: syntax:
//
//	WIFI:T:<auth>;S:<ssid>;P:<password>;H:true;;
//
// Field order is fixed (T, S, P, H). The P: segment is omitted for open
// networks and the H: segment is omitted for networks that broadcast their
// SSID. Within SSID and password values the characters backslash, semicolon,
// comma, and double-quote are escaped with a leading backslash.
//
// # Validation
//
// Payload construction fails with an error wrapping ErrInvalidCredential
// when the SSID is empty or longer than 32 bytes, when a secured network has
// no password, or when either field contains a newline (the format has no
// escape sequence for line breaks, so a raw one would corrupt the payload).
//
// Stricter passphrase rules (WPA/WEP length classes) are advisory only and
// exposed through Lint; see that function for details.
package wifi
