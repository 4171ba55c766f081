package auth

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"lighthouseservers/ptprov/internal/config"
	"lighthouseservers/ptprov/internal/services/auth"
)

// setupStore installs an in-memory keychain and an empty config file.
func setupStore(t *testing.T) *auth.MockStore {
	t.Helper()
	store := auth.NewMockStore()
	auth.SetDefaultStore(store)
	t.Cleanup(auth.ResetDefaultStore)

	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)
	return store
}

func execAuth(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), err
}

func TestLogin_WithTokenFlag(t *testing.T) {
	store := setupStore(t)

	stdout, err := execAuth(t, "login", "--token", "  ptla_abcdef1234  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Saved panel API key") {
		t.Errorf("expected confirmation, got: %s", stdout)
	}

	got, err := store.GetToken(auth.PanelCredential)
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if got != "ptla_abcdef1234" {
		t.Errorf("stored token = %q, want %q", got, "ptla_abcdef1234")
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	store := setupStore(t)
	store.Err = errors.New("keychain locked")

	_, err := execAuth(t, "login", "--token", "ptla_x")
	if err == nil || !strings.Contains(err.Error(), "keychain locked") {
		t.Fatalf("expected keychain error, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	store := setupStore(t)
	_ = store.SetToken(auth.PanelCredential, "ptla_x")

	stdout, err := execAuth(t, "logout")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Removed panel API key") {
		t.Errorf("expected removal message, got: %s", stdout)
	}

	stdout, err = execAuth(t, "logout")
	if err != nil {
		t.Fatalf("unexpected error on second logout: %v", err)
	}
	if !strings.Contains(stdout, "No panel API key stored.") {
		t.Errorf("expected nothing-stored message, got: %s", stdout)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		keychain string
		want     []string
	}{
		{
			name: "nothing configured",
			cfg:  &config.Config{},
			want: []string{"panel-url: not set", "api key: not logged in"},
		},
		{
			name:     "keychain key",
			cfg:      &config.Config{PanelURL: "https://panel.example.com"},
			keychain: "ptla_abcdef1234",
			want:     []string{"panel-url: https://panel.example.com", "api key: keychain (********1234)"},
		},
		{
			name:     "config key wins",
			cfg:      &config.Config{PanelURL: "https://panel.example.com", APIKey: "ptla_fromfile9876"},
			keychain: "ptla_abcdef1234",
			want:     []string{"api key: config file (********9876)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupStore(t)
			if tt.keychain != "" {
				_ = store.SetToken(auth.PanelCredential, tt.keychain)
			}
			if err := tt.cfg.Save(); err != nil {
				t.Fatalf("failed to save config: %v", err)
			}

			stdout, err := execAuth(t, "status")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(stdout, want) {
					t.Errorf("expected %q in output:\n%s", want, stdout)
				}
			}
		})
	}
}
