package config

import (
	"strings"
	"testing"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	spec := Lookup("  PANEL-URL ")
	if spec == nil {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if spec.Name != "panel-url" {
		t.Errorf("expected Name %q, got %q", "panel-url", spec.Name)
	}
}

func TestLookup_FieldNames(t *testing.T) {
	tests := map[string]string{
		"pterodactyl_url": "panel-url",
		"api_key":         "api-key",
		"API KEY":         "api-key",
	}
	for in, want := range tests {
		spec := Lookup(in)
		if spec == nil {
			t.Errorf("Lookup(%q) = nil, want %q", in, want)
			continue
		}
		if spec.Name != want {
			t.Errorf("Lookup(%q).Name = %q, want %q", in, spec.Name, want)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	if spec := Lookup("default-provider"); spec != nil {
		t.Errorf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeys_AllHaveGetAndSet(t *testing.T) {
	for _, k := range Keys {
		if k.Get == nil {
			t.Errorf("key %q has nil Get function", k.Name)
		}
		if k.Set == nil {
			t.Errorf("key %q has nil Set function", k.Name)
		}
		if k.Description == "" {
			t.Errorf("key %q has empty Description", k.Name)
		}
	}
}

func TestKeys_SetNormalizesPanelURL(t *testing.T) {
	cfg := &Config{}
	Lookup("panel-url").Set(cfg, " https://panel.example.com/ ")
	if cfg.PanelURL != "https://panel.example.com" {
		t.Errorf("PanelURL = %q, want trailing slash trimmed", cfg.PanelURL)
	}
}

func TestKeys_PanelURLValidation(t *testing.T) {
	spec := Lookup("panel-url")
	if spec.Validate == nil {
		t.Fatal("expected panel-url to have a validator")
	}
	if err := spec.Validate("not a url"); err == nil {
		t.Error("expected validation error for malformed URL")
	}
}

func TestKeySpec_DisplayMasksSecrets(t *testing.T) {
	cfg := &Config{APIKey: "ptla_0123456789abcdef"}
	got := Lookup("api-key").Display(cfg)
	if strings.Contains(got, "ptla_") {
		t.Errorf("expected api key to be masked, got %q", got)
	}
	if !strings.HasSuffix(got, "cdef") {
		t.Errorf("expected masked key to keep last four characters, got %q", got)
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(Keys) {
		t.Fatalf("expected %d names, got %d", len(Keys), len(names))
	}
	for i, name := range names {
		if name != Keys[i].Name {
			t.Errorf("index %d: expected %q, got %q", i, Keys[i].Name, name)
		}
	}
}

func TestKeysHelp_ContainsAllKeys(t *testing.T) {
	help := KeysHelp()
	if !strings.Contains(help, "Available keys:") {
		t.Error("expected 'Available keys:' header in help output")
	}
	for _, k := range Keys {
		if !strings.Contains(help, k.Name) {
			t.Errorf("expected key %q in help output", k.Name)
		}
	}
}
