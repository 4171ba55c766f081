package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"lighthouseservers/ptprov/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_PanelURL(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "panel-url", "https://panel.example.com/")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"https://panel.example.com"`) {
		t.Errorf("expected confirmation with trimmed URL, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.PanelURL != "https://panel.example.com" {
		t.Errorf("expected PanelURL %q, got %q", "https://panel.example.com", cfg.PanelURL)
	}
}

func TestSet_PanelURL_Invalid(t *testing.T) {
	path := setupTestConfig(t)

	_, stderr := execConfig(t, "set", "panel-url", "ftp://panel.example.com")

	if !strings.Contains(stderr, "must use http or https") {
		t.Errorf("expected scheme error, got: %s", stderr)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.PanelURL != "" {
		t.Errorf("invalid URL should not be saved, got %q", cfg.PanelURL)
	}
}

func TestSet_APIKey_IsMaskedInOutput(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "API-KEY", "ptla_secretvalue1234")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.Contains(stdout, "secretvalue") {
		t.Errorf("API key must not be echoed, got: %s", stdout)
	}
	if !strings.Contains(stdout, "1234") {
		t.Errorf("expected masked key suffix, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.APIKey != "ptla_secretvalue1234" {
		t.Errorf("expected APIKey to be saved verbatim, got %q", cfg.APIKey)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
