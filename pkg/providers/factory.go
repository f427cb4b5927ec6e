package providers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dotsetgreg/veil/pkg/config"
)

const (
	ProviderScript     = "script"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

type responderFactory struct {
	build    func(cfg *config.Config) (Responder, error)
	validate func(cfg *config.Config) error
}

var (
	factoryMu       sync.RWMutex
	factories       = map[string]responderFactory{}
	registrationErr error
)

// RegisterFactory installs a named responder backend. Backends self-register
// from init funcs in this package; hosts may add their own before first use.
func RegisterFactory(name string, build func(cfg *config.Config) (Responder, error), validate func(cfg *config.Config) error) {
	name = NormalizeResponderName(name)
	factoryMu.Lock()
	defer factoryMu.Unlock()
	if name == "" {
		registrationErr = errors.Join(registrationErr, fmt.Errorf("providers: factory name is required"))
		return
	}
	if build == nil {
		registrationErr = errors.Join(registrationErr, fmt.Errorf("providers: factory build func is required"))
		return
	}
	factories[name] = responderFactory{build: build, validate: validate}
}

// SupportedResponders lists registered backend names, sorted.
func SupportedResponders() []string {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeResponderName lowercases a backend name, defaulting empty input to
// the script backend so a bare config still produces a working engine.
func NormalizeResponderName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ProviderScript
	}
	return name
}

// ActiveResponderName returns the backend the config selects.
func ActiveResponderName(cfg *config.Config) string {
	if cfg == nil {
		return ProviderScript
	}
	return NormalizeResponderName(cfg.Providers.Default)
}

// ValidateResponderConfig checks the selected backend's credentials without
// building it.
func ValidateResponderConfig(cfg *config.Config) error {
	factory, _, err := getFactory(cfg)
	if err != nil {
		return err
	}
	if factory.validate == nil {
		return nil
	}
	return factory.validate(cfg)
}

// CreateResponder builds the backend the config selects.
func CreateResponder(cfg *config.Config) (Responder, error) {
	factory, name, err := getFactory(cfg)
	if err != nil {
		return nil, err
	}
	responder, err := factory.build(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s responder: %w", name, err)
	}
	return responder, nil
}

func getFactory(cfg *config.Config) (responderFactory, string, error) {
	name := ActiveResponderName(cfg)
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	if registrationErr != nil {
		return responderFactory{}, name, registrationErr
	}
	factory, ok := factories[name]
	if !ok {
		return responderFactory{}, name, fmt.Errorf("unsupported responder %q (supported: %s)", name, strings.Join(supportedLocked(), ", "))
	}
	return factory, name, nil
}

func supportedLocked() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
