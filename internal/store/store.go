// Package store persists the editor's small key/value preferences: the theme
// and the auto-saved buffer. It stands in for the browser's local storage.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Persisted keys.
const (
	KeyTheme    = "theme"
	KeyAutoSave = "autoSaveCode"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store is a string-valued key/value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open opens the named backend with its files under dir.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		s, err := OpenJSON(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// DefaultTheme is reported when no theme has been persisted.
const DefaultTheme = "light"

// Prefs is a typed view over a Store for the two persisted preferences.
type Prefs struct {
	s Store
}

func NewPrefs(s Store) *Prefs { return &Prefs{s: s} }

// Theme returns the persisted theme string, or DefaultTheme when absent.
// The stored value is returned as-is; callers decide how to style unknown names.
func (p *Prefs) Theme(ctx context.Context) (string, error) {
	v, ok, err := p.s.Get(ctx, KeyTheme)
	if err != nil {
		return DefaultTheme, fmt.Errorf("read theme: %w", err)
	}
	if !ok || v == "" {
		return DefaultTheme, nil
	}
	return v, nil
}

func (p *Prefs) SetTheme(ctx context.Context, theme string) error {
	if err := p.s.Set(ctx, KeyTheme, theme); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// AutoSave returns the auto-saved buffer, or "" when none exists.
func (p *Prefs) AutoSave(ctx context.Context) (string, error) {
	v, _, err := p.s.Get(ctx, KeyAutoSave)
	if err != nil {
		return "", fmt.Errorf("read auto-save: %w", err)
	}
	return v, nil
}

func (p *Prefs) SetAutoSave(ctx context.Context, code string) error {
	if err := p.s.Set(ctx, KeyAutoSave, code); err != nil {
		return fmt.Errorf("write auto-save: %w", err)
	}
	return nil
}

// Memory is an in-process Store, used by tests and as a fallback when the
// configured backend cannot be opened.
type Memory struct {
	m      map[string]string
	Writes int
}

func NewMemory() *Memory { return &Memory{m: map[string]string{}} }

func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(_ context.Context, key, value string) error {
	s.m[key] = value
	s.Writes++
	return nil
}

func (s *Memory) Close() error { return nil }
