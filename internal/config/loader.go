package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvWordLength  = "WURDLE_WORD_LENGTH"
	EnvMaxAttempts = "WURDLE_MAX_ATTEMPTS"
	EnvSource      = "WURDLE_SOURCE"
	EnvFixedWord   = "WURDLE_WORD"
	EnvDailySalt   = "WURDLE_DAILY_SALT"
	EnvAnswersFile = "WURDLE_ANSWERS_FILE"
	EnvAllowedFile = "WURDLE_ALLOWED_FILE"
	EnvOpenMode    = "WURDLE_OPEN_MODE"
	EnvDB          = "WURDLE_DB"
)

// Load loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.wurdle/config.yaml -> ./configs/wurdle.yaml -> embedded default.
// A .env file in the working directory is read first; variables already set
// in the environment win over it.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: read .env: %w", err)
	}

	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "wurdle.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := Default()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any WURDLE_* variables returned by getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWordLength, &cfg.Game.WordLength},
		{EnvMaxAttempts, &cfg.Game.MaxAttempts},
	}
	for _, e := range ints {
		v := strings.TrimSpace(getenv(e.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", e.key, err)
		}
		*e.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvSource, &cfg.Source.Kind},
		{EnvFixedWord, &cfg.Source.Fixed},
		{EnvDailySalt, &cfg.Source.DailySalt},
		{EnvAnswersFile, &cfg.Words.Answers},
		{EnvAllowedFile, &cfg.Words.Allowed},
		{EnvDB, &cfg.Words.DB},
	}
	for _, e := range strs {
		if v := getenv(e.key); v != "" {
			*e.dst = v
		}
	}

	if v := strings.TrimSpace(getenv(EnvOpenMode)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvOpenMode, err)
		}
		cfg.Words.OpenMode = b
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wurdle", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
