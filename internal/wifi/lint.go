package wifi

import "fmt"

// Lint reports advisory findings about a credential that scanning devices
// or access points may reject even though the payload itself is well formed.
// The checks mirror the 802.11 passphrase length classes:
//
//   - WPA: 8-63 printable ASCII characters, or exactly 64 hex digits (PSK)
//   - WEP: 5 or 13 characters, or 10 or 26 hex digits
//   - nopass: any supplied password is ignored
//
// Findings never block payload generation; the CLI surfaces them as
// warnings on stderr.
func Lint(c Credential) []string {
	var findings []string

	switch c.Auth {
	case AuthWPA:
		n := len(c.Password)
		hexPSK := n == 64 && isHex(c.Password)
		passphrase := n >= 8 && n <= 63 && isPrintableASCII(c.Password)
		if c.Password != "" && !hexPSK && !passphrase {
			findings = append(findings,
				fmt.Sprintf("WPA passphrases are 8-63 printable ASCII characters or 64 hex digits (got %d bytes)", n))
		}
	case AuthWEP:
		n := len(c.Password)
		hexKey := (n == 10 || n == 26) && isHex(c.Password)
		if c.Password != "" && n != 5 && n != 13 && !hexKey {
			findings = append(findings,
				fmt.Sprintf("WEP keys are 5 or 13 characters, or 10 or 26 hex digits (got %d bytes)", n))
		}
	case AuthNone:
		if c.Password != "" {
			findings = append(findings, "password is ignored for open (nopass) networks")
		}
	}

	return findings
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
