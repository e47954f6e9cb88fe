// Package config provides user configuration management for wifiqr.
//
// This package manages a YAML-based configuration file that stores saved
// Wi-Fi network profiles (SSID, auth type, hidden flag) and application
// preferences. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/wifiqr/config.yaml or $HOME/.config/wifiqr/config.yaml
//   - macOS: $HOME/.config/wifiqr/config.yaml
//   - Windows: %LOCALAPPDATA%\wifiqr\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores Wi-Fi passwords. Saved profiles hold
// the SSID, auth type and hidden flag only; the password is supplied per
// invocation.
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization. File
// operations are protected by a mutex and writes are atomic (tmp + rename).
package config
