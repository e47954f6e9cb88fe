package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "wifiqr") {
		t.Errorf("GetConfigDir() = %v, should contain 'wifiqr'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Profiles == nil {
		t.Error("NewRegistry().Profiles should not be nil")
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.DefaultFormat != "ascii" {
		t.Errorf("NewRegistry().Preferences.DefaultFormat = %v, want ascii", reg.Preferences.DefaultFormat)
	}
	if reg.Preferences.DefaultAuth != "WPA" {
		t.Errorf("NewRegistry().Preferences.DefaultAuth = %v, want WPA", reg.Preferences.DefaultAuth)
	}
}

func TestProfileOperations(t *testing.T) {
	reg := NewRegistry()

	if got := reg.GetProfile("home"); got != nil {
		t.Errorf("GetProfile() on empty registry = %v, want nil", got)
	}

	reg.SetProfile("home", &Profile{SSID: "HomeNet", Auth: "WPA", Hidden: true})
	reg.SetProfile("cafe", &Profile{SSID: "CoffeeShop", Auth: "nopass"})

	profile := reg.GetProfile("home")
	if profile == nil {
		t.Fatal("GetProfile() returned nil after SetProfile")
	}
	if profile.SSID != "HomeNet" || profile.Auth != "WPA" || !profile.Hidden {
		t.Errorf("GetProfile() = %+v, want SSID=HomeNet Auth=WPA Hidden=true", profile)
	}

	names := reg.ProfileNames()
	if len(names) != 2 || names[0] != "cafe" || names[1] != "home" {
		t.Errorf("ProfileNames() = %v, want [cafe home]", names)
	}

	if !reg.DeleteProfile("cafe") {
		t.Error("DeleteProfile() should report true for existing profile")
	}
	if reg.DeleteProfile("cafe") {
		t.Error("DeleteProfile() should report false for missing profile")
	}
	if len(reg.ProfileNames()) != 1 {
		t.Errorf("ProfileNames() after delete = %v, want 1 entry", reg.ProfileNames())
	}
}

func TestTouchProfile(t *testing.T) {
	reg := NewRegistry()
	reg.SetProfile("home", &Profile{SSID: "HomeNet", Auth: "WPA"})

	reg.TouchProfile("home")
	if reg.GetProfile("home").LastUsed.IsZero() {
		t.Error("TouchProfile() should set LastUsed")
	}

	// Touching a missing profile must not create it.
	reg.TouchProfile("nope")
	if reg.GetProfile("nope") != nil {
		t.Error("TouchProfile() should not create profiles")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	reg := NewRegistry()
	reg.SetProfile("home", &Profile{SSID: "HomeNet", Auth: "WPA", Hidden: true})

	if err := reg.saveToFile(configPath); err != nil {
		t.Fatalf("saveToFile() error = %v", err)
	}

	loaded, err := loadRegistryFromFile(configPath)
	if err != nil {
		t.Fatalf("loadRegistryFromFile() error = %v", err)
	}

	profile := loaded.GetProfile("home")
	if profile == nil {
		t.Fatal("loaded registry is missing saved profile")
	}
	if profile.SSID != "HomeNet" || profile.Auth != "WPA" || !profile.Hidden {
		t.Errorf("loaded profile = %+v, want SSID=HomeNet Auth=WPA Hidden=true", profile)
	}
}

func TestSavedFileNeverContainsPasswordField(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	reg := NewRegistry()
	reg.SetProfile("home", &Profile{SSID: "HomeNet", Auth: "WPA"})

	if err := reg.saveToFile(configPath); err != nil {
		t.Fatalf("saveToFile() error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	lower := strings.ToLower(string(data))
	// The word appears only in the header comment explaining the policy.
	for _, line := range strings.Split(lower, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if strings.Contains(line, "password") {
			t.Errorf("config file contains a password field: %q", line)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := loadRegistryFromFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadRegistryFromFile() error = %v", err)
	}
	if loaded.Version != 1 {
		t.Errorf("default registry version = %d, want 1", loaded.Version)
	}
	if len(loaded.Profiles) != 0 {
		t.Errorf("default registry should have no profiles, got %v", loaded.ProfileNames())
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("version: 99\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := loadRegistryFromFile(configPath); err == nil {
		t.Error("loadRegistryFromFile() should reject unknown config versions")
	}
}
