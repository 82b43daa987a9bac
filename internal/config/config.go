package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/bureaucrat/internal/logging"
)

// Config captures the settings the landing page needs at startup.
type Config struct {
	CasesURL       string
	RequestTimeout time.Duration
	ContentFile    string
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/bureaucrat/config.toml"
	defaultCasesURL       = "http://127.0.0.1:8080/get-cases"
	defaultRequestTimeout = 5 * time.Second
	defaultLogFile        = "~/.local/state/bureaucrat/bureaucrat.log"
	defaultLogLevel       = "info"
)

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CasesURL       string `toml:"cases_url"`
		RequestTimeout string `toml:"request_timeout"`
		ContentFile    string `toml:"content_file"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CasesURL); v != "" {
		cfg.CasesURL = v
	}

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must be positive, got %s", v)
		}
		cfg.RequestTimeout = d
	}

	if v := strings.TrimSpace(raw.ContentFile); v != "" {
		cfg.ContentFile = mustExpand(v)
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		if _, err := logging.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("parse config: log_level: %w", err)
		}
		cfg.LogLevel = v
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		CasesURL:       defaultCasesURL,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
