package config

import (
	"sort"
	"time"
)

// Registry represents the entire user configuration file.
// This stores saved network profiles and application preferences.
type Registry struct {
	Version     int                 `yaml:"version"`
	Profiles    map[string]*Profile `yaml:"profiles,omitempty"` // Keyed by profile name
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Profile represents a saved Wi-Fi network. Passwords are NEVER stored -
// they are always supplied on the command line or prompted in the wizard.
type Profile struct {
	SSID     string    `yaml:"ssid"`
	Auth     string    `yaml:"auth"`                // "WPA", "WEP" or "nopass"
	Hidden   bool      `yaml:"hidden,omitempty"`    // SSID not broadcast
	LastUsed time.Time `yaml:"last_used,omitempty"` // Last generation time
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultFormat string `yaml:"default_format"` // Output format when -f is not given
	DefaultAuth   string `yaml:"default_auth"`   // Auth type when -t is not given
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:  1,
		Profiles: make(map[string]*Profile),
		Preferences: &Preferences{
			DefaultFormat: "ascii",
			DefaultAuth:   "WPA",
		},
	}
}

// GetProfile retrieves a saved profile by name.
// Returns nil if the profile doesn't exist in the registry.
func (r *Registry) GetProfile(name string) *Profile {
	return r.Profiles[name]
}

// SetProfile adds or replaces a saved profile.
func (r *Registry) SetProfile(name string, profile *Profile) {
	if r.Profiles == nil {
		r.Profiles = make(map[string]*Profile)
	}
	r.Profiles[name] = profile
}

// DeleteProfile removes a saved profile. It reports whether the profile
// existed.
func (r *Registry) DeleteProfile(name string) bool {
	if _, ok := r.Profiles[name]; !ok {
		return false
	}
	delete(r.Profiles, name)
	return true
}

// ProfileNames returns the saved profile names in sorted order.
func (r *Registry) ProfileNames() []string {
	names := make([]string, 0, len(r.Profiles))
	for name := range r.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TouchProfile updates the last-used timestamp for a profile, if it exists.
func (r *Registry) TouchProfile(name string) {
	if profile, ok := r.Profiles[name]; ok {
		profile.LastUsed = time.Now()
	}
}
