package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/babs/unicon/compositor"
)

// Config holds the persisted icon settings.
type Config struct {
	Enabled                bool             `json:"enabled"`
	IconPath               string           `json:"icon_path"`
	UseAutoColor           bool             `json:"use_auto_color"`
	ProjectName            string           `json:"project_name,omitempty"`
	OverlayColor           compositor.Color `json:"overlay_color"`
	Blend                  string           `json:"blend"`
	BadgeText              string           `json:"badge_text"`
	BadgeTextColor         compositor.Color `json:"badge_text_color"`
	FontSizeMultiplier     float64          `json:"font_size_multiplier"`
	FontName               string           `json:"font_name"`
	IconSize               int              `json:"icon_size"`
	Target                 string           `json:"target"`
	OutputPath             string           `json:"output_path,omitempty"`
	ReapplyIntervalSeconds int              `json:"reapply_interval_seconds"`
}

const (
	minFontSizeMultiplier = 0.5
	maxFontSizeMultiplier = 2.0
)

var configPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configPath = filepath.Join(home, ".config", "unicon", "settings.json")
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		UseAutoColor:           true,
		OverlayColor:           compositor.Transparent,
		Blend:                  compositor.BlendAdd.String(),
		BadgeTextColor:         compositor.White,
		FontSizeMultiplier:     1.0,
		FontName:               compositor.DefaultFontName,
		IconSize:               256,
		Target:                 "file",
		ReapplyIntervalSeconds: 1,
	}
}

// ValidTarget reports whether name is a known install target.
func ValidTarget(name string) bool {
	switch name {
	case "file", "tray", "dock":
		return true
	}
	return false
}

// ValidBlendName reports whether name is a known blend mode.
func ValidBlendName(name string) bool {
	_, err := compositor.ParseBlendMode(name)
	return err == nil
}

// loadConfig loads config from disk, creating a default if it doesn't exist.
// Missing fields keep their defaults via json.Unmarshal into a pre-populated struct.
func loadConfig() Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := saveConfig(cfg); writeErr != nil {
				log.Printf("Failed to write default config: %v", writeErr)
			} else {
				log.Printf("Created default config at %s", configPath)
			}
			return cfg
		}
		log.Printf("Failed to read config %s: %v", configPath, err)
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse config %s: %v", configPath, err)
		return defaultConfig()
	}

	validateConfig(&cfg)
	return cfg
}

// validateConfig replaces invalid fields with their defaults, logging each one.
func validateConfig(cfg *Config) {
	defaults := defaultConfig()
	if cfg.FontSizeMultiplier <= 0 {
		log.Printf("Invalid font_size_multiplier %v in config, using default %v", cfg.FontSizeMultiplier, defaults.FontSizeMultiplier)
		cfg.FontSizeMultiplier = defaults.FontSizeMultiplier
	}
	if cfg.FontSizeMultiplier < minFontSizeMultiplier || cfg.FontSizeMultiplier > maxFontSizeMultiplier {
		clamped := min(max(cfg.FontSizeMultiplier, minFontSizeMultiplier), maxFontSizeMultiplier)
		log.Printf("font_size_multiplier %v out of range, clamping to %v", cfg.FontSizeMultiplier, clamped)
		cfg.FontSizeMultiplier = clamped
	}
	if cfg.FontName == "" || !compositor.ValidFontName(cfg.FontName) {
		if cfg.FontName != "" {
			log.Printf("Unknown font_name %q in config, using default %q", cfg.FontName, defaults.FontName)
		}
		cfg.FontName = defaults.FontName
	}
	if cfg.Blend == "" || !ValidBlendName(cfg.Blend) {
		if cfg.Blend != "" {
			log.Printf("Unknown blend %q in config, using default %q", cfg.Blend, defaults.Blend)
		}
		cfg.Blend = defaults.Blend
	}
	if cfg.IconSize < 0 {
		log.Printf("Invalid icon_size %d in config, using default %d", cfg.IconSize, defaults.IconSize)
		cfg.IconSize = defaults.IconSize
	}
	if cfg.Target == "" || !ValidTarget(cfg.Target) {
		if cfg.Target != "" {
			log.Printf("Unknown target %q in config, using default %q", cfg.Target, defaults.Target)
		}
		cfg.Target = defaults.Target
	}
	if cfg.ReapplyIntervalSeconds <= 0 {
		log.Printf("Invalid reapply_interval_seconds %d in config, using default %d", cfg.ReapplyIntervalSeconds, defaults.ReapplyIntervalSeconds)
		cfg.ReapplyIntervalSeconds = defaults.ReapplyIntervalSeconds
	}
}

// outputPath returns the configured icon output file, defaulting to icon.png
// next to the settings file.
func outputPath(cfg Config) string {
	if cfg.OutputPath != "" {
		return cfg.OutputPath
	}
	return filepath.Join(filepath.Dir(configPath), "icon.png")
}

// saveConfig writes config to disk with restrictive permissions (0600).
func saveConfig(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFileSecure(configPath, data)
}

// writeFileSecure writes data to path with 0600 permissions, creating parent dirs.
func writeFileSecure(path string, data []byte) error {
	return writeFileAtomic(path, data, 0600, 0700)
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte, perm, dirPerm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
