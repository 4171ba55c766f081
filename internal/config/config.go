// Package config handles persistent user configuration for ptprov.
//
// Configuration is stored as JSON at ~/.config/ptprov/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). The field names
// match the config.json read by the original provisioning script, so an
// existing file can be pointed at with --config.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lighthouseservers/ptprov/internal/services/auth"
	"lighthouseservers/ptprov/internal/util"
)

const (
	appDir   = "ptprov"
	fileName = "config.json"
)

// pathOverride, when non-empty, replaces the default config file path.
// Set by the --config flag and by tests. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default.
func ResetPath() { pathOverride = "" }

// Config holds settings that persist across invocations.
type Config struct {
	PanelURL string `json:"pterodactyl_url,omitempty"`

	// APIKey is optional; when empty the key is read from the OS keychain
	// (see 'ptprov auth login').
	APIKey string `json:"api_key,omitempty"`
}

// Panel is the resolved connection settings for the panel API.
type Panel struct {
	BaseURL string
	APIKey  string
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
// The file may hold an API key, so it is written owner-readable only.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// Panel resolves the panel connection settings. The URL must be configured
// and valid. The API key comes from the config file, falling back to the
// keychain entry managed by 'ptprov auth login'.
func (c *Config) Panel(store auth.Store) (Panel, error) {
	baseURL := strings.TrimSpace(c.PanelURL)
	if baseURL == "" {
		return Panel{}, fmt.Errorf("panel URL is not configured: set it with 'ptprov config set panel-url <url>'")
	}
	if err := util.ValidatePanelURL(baseURL); err != nil {
		return Panel{}, err
	}

	apiKey := strings.TrimSpace(c.APIKey)
	if apiKey == "" && store != nil {
		token, err := store.GetToken(auth.PanelCredential)
		switch {
		case err == nil:
			apiKey = strings.TrimSpace(token)
		case errors.Is(err, auth.ErrTokenNotFound):
		default:
			return Panel{}, fmt.Errorf("failed to read API key from keychain: %w", err)
		}
	}
	if apiKey == "" {
		return Panel{}, fmt.Errorf("panel API key is not configured: run 'ptprov auth login' or set api_key in %s", displayPath())
	}

	return Panel{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
	}, nil
}

func displayPath() string {
	p, err := Path()
	if err != nil {
		return "the config file"
	}
	return p
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
