// Package config persists the application's preferences between sessions.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied when a mesh is opened
	TextureSize  int     `json:"texture_size"`
	TexelDensity float64 `json:"texel_density"`

	// ModifyTexture moves pixels along with UV edits by default.
	ModifyTexture bool `json:"modify_texture"`

	// Theme is the persisted appearance preference: "light", "dark" or
	// "system".
	Theme string `json:"theme"`
}

// DefaultAppConfig returns an AppConfig populated with the defaults a
// fresh scene would use.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		TextureSize:   64,
		TexelDensity:  16,
		ModifyTexture: false,
		Theme:         "system",
	}
}

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.texeluv/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".texeluv")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// Save persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func Save(path string, cfg AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
