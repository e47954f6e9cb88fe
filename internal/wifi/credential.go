package wifi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredential is the base error for all credential validation
// failures. Callers can match it with errors.Is.
var ErrInvalidCredential = errors.New("invalid credential")

// MaxSSIDBytes is the maximum SSID length permitted by 802.11, measured in
// bytes after UTF-8 encoding (not runes, not escaped length).
const MaxSSIDBytes = 32

// AuthType identifies the network's authentication scheme. It maps to the
// T: field of the payload.
type AuthType int

const (
	// AuthWPA covers WPA, WPA2 and WPA3 personal networks.
	AuthWPA AuthType = iota
	// AuthWEP is legacy WEP authentication.
	AuthWEP
	// AuthNone is an open network with no password.
	AuthNone
)

// Tag returns the value emitted in the payload's T: field. Open networks
// use an empty tag.
func (a AuthType) Tag() string {
	switch a {
	case AuthWPA:
		return "WPA"
	case AuthWEP:
		return "WEP"
	default:
		return ""
	}
}

// String returns the CLI-facing name of the auth type.
func (a AuthType) String() string {
	if a == AuthNone {
		return "nopass"
	}
	return a.Tag()
}

// RequiresPassword reports whether the auth type needs a non-empty password.
func (a AuthType) RequiresPassword() bool {
	return a == AuthWPA || a == AuthWEP
}

// ParseAuthType parses a CLI auth type value. Accepted values are "WPA",
// "WEP" and "nopass", case-insensitively.
func ParseAuthType(s string) (AuthType, error) {
	switch strings.ToLower(s) {
	case "wpa":
		return AuthWPA, nil
	case "wep":
		return AuthWEP, nil
	case "nopass":
		return AuthNone, nil
	default:
		return AuthWPA, fmt.Errorf("unknown auth type %q (valid: WPA, WEP, nopass)", s)
	}
}

// Credential holds the fields of a single Wi-Fi network. It is built once
// from CLI input and consumed once by Payload.
type Credential struct {
	SSID     string
	Password string
	Auth     AuthType
	Hidden   bool
}

// ValidateSSID checks an SSID against the payload format's requirements:
// non-empty, at most MaxSSIDBytes bytes, no newlines. Failures wrap
// ErrInvalidCredential.
func ValidateSSID(ssid string) error {
	switch n := len(ssid); {
	case n == 0:
		return fmt.Errorf("%w: SSID must not be empty", ErrInvalidCredential)
	case n > MaxSSIDBytes:
		return fmt.Errorf("%w: SSID is too long (%d bytes, maximum %d)", ErrInvalidCredential, n, MaxSSIDBytes)
	}
	if strings.ContainsAny(ssid, "\r\n") {
		return fmt.Errorf("%w: SSID must not contain newlines", ErrInvalidCredential)
	}
	return nil
}

// Validate checks the credential against the payload format's requirements.
// All failures wrap ErrInvalidCredential.
func (c Credential) Validate() error {
	if err := ValidateSSID(c.SSID); err != nil {
		return err
	}
	// Open networks ignore the password entirely, so its content is not
	// checked either.
	if c.Auth.RequiresPassword() {
		if c.Password == "" {
			return fmt.Errorf("%w: %s networks require a password", ErrInvalidCredential, c.Auth)
		}
		if strings.ContainsAny(c.Password, "\r\n") {
			return fmt.Errorf("%w: password must not contain newlines", ErrInvalidCredential)
		}
	}
	return nil
}

// Payload validates the credential and serializes it into the WIFI:
// configuration string. The function is pure: same credential, same output.
func (c Credential) Payload() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(c.Auth.Tag())
	b.WriteString(";S:")
	b.WriteString(Escape(c.SSID))
	b.WriteByte(';')
	if c.Auth.RequiresPassword() {
		b.WriteString("P:")
		b.WriteString(Escape(c.Password))
		b.WriteByte(';')
	}
	if c.Hidden {
		b.WriteString("H:true;")
	}
	b.WriteByte(';')
	return b.String(), nil
}

// Escape prefixes each occurrence of backslash, semicolon, comma and
// double-quote with a backslash. It is a single left-to-right pass over the
// raw text; applying it twice escapes the escapes, so callers must pass raw
// values exactly once.
func Escape(s string) string {
	if !strings.ContainsAny(s, `\;,"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\', ';', ',', '"':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
