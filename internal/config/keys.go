package config

import (
	"fmt"
	"slices"
	"strings"

	"lighthouseservers/ptprov/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "panel-url").
	Name string

	// Aliases are alternative names accepted by Lookup, such as the JSON
	// field name in config.json.
	Aliases []string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Secret values are masked when displayed.
	Secret bool

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate, when non-nil, checks a value before it is saved.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "panel-url",
		Aliases:     []string{"pterodactyl-url"},
		Description: "Base URL of the panel (e.g. https://panel.example.com)",
		Get:         func(cfg *Config) string { return cfg.PanelURL },
		Set:         func(cfg *Config, v string) { cfg.PanelURL = strings.TrimRight(strings.TrimSpace(v), "/") },
		Validate:    util.ValidatePanelURL,
	},
	{
		Name:        "api-key",
		Description: "Application API key (prefer 'ptprov auth login' to keep it in the keychain)",
		Secret:      true,
		Get:         func(cfg *Config) string { return cfg.APIKey },
		Set:         func(cfg *Config, v string) { cfg.APIKey = strings.TrimSpace(v) },
	},
}

// Display returns the value for presentation, masking secrets.
func (k KeySpec) Display(cfg *Config) string {
	v := k.Get(cfg)
	if k.Secret {
		return util.MaskSecret(v)
	}
	return v
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized || slices.Contains(Keys[i].Aliases, normalized) {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
