package panel

import (
	"fmt"
	"sync"

	"lighthouseservers/ptprov/internal/config"
	"lighthouseservers/ptprov/internal/domain"
	"lighthouseservers/ptprov/internal/services/auth"

	"github.com/rs/zerolog"
)

// Factory builds the panel a command talks to.
type Factory func(store auth.Store, log zerolog.Logger) (domain.Panel, error)

var (
	mu      sync.RWMutex
	factory Factory = Connect
)

// Connect loads the config file and returns a Client for the configured
// panel. It is the default Factory.
func Connect(store auth.Store, log zerolog.Logger) (domain.Panel, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	settings, err := cfg.Panel(store)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("base_url", settings.BaseURL).Msg("panel configured")
	return NewFromConfig(settings, log), nil
}

// Open returns a panel from the current Factory.
func Open(store auth.Store, log zerolog.Logger) (domain.Panel, error) {
	mu.RLock()
	f := factory
	mu.RUnlock()
	return f(store, log)
}

// Use replaces the Factory. Intended for use in tests only.
func Use(f Factory) {
	if f == nil {
		panic("panel: nil factory")
	}
	mu.Lock()
	defer mu.Unlock()
	factory = f
}

// Reset restores the default Factory.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	factory = Connect
}
