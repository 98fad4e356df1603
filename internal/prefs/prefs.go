// Package prefs is the typed layer over the key-value store. Each feature
// owns one key in the flat namespace; every value is a whole blob replaced
// on write. Absence of a key yields the shipped defaults; a transport
// failure is returned as an error and never masked by a default.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"licitemos/internal/fixtures"
	"licitemos/internal/models"
)

const (
	KeyAlertsConfig  = "alertas_config"
	KeySavedSearches = "busquedas_guardadas"
	KeyProfile       = "user_profile"
)

// KV is the slice of the kv client the preference store needs.
type KV interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

//// Alerts

func (s *Store) LoadAlerts(ctx context.Context) (models.AlertsConfig, error) {
	raw, found, err := s.kv.Get(ctx, KeyAlertsConfig)
	if err != nil {
		return models.AlertsConfig{}, fmt.Errorf("prefs.Store.LoadAlerts: %w", err)
	}
	if !found {
		return fixtures.DefaultAlertsConfig(), nil
	}

	var cfg models.AlertsConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return models.AlertsConfig{}, fmt.Errorf("prefs.Store.LoadAlerts: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return models.AlertsConfig{}, fmt.Errorf("prefs.Store.LoadAlerts: %w", err)
	}
	return cfg, nil
}

func (s *Store) SaveAlerts(ctx context.Context, cfg models.AlertsConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("prefs.Store.SaveAlerts: %w", err)
	}
	if err := s.kv.Set(ctx, KeyAlertsConfig, cfg); err != nil {
		return fmt.Errorf("prefs.Store.SaveAlerts: %w", err)
	}
	return nil
}

//// Profile

func (s *Store) LoadProfile(ctx context.Context) (models.Profile, error) {
	raw, found, err := s.kv.Get(ctx, KeyProfile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("prefs.Store.LoadProfile: %w", err)
	}
	if !found {
		return fixtures.DefaultProfile(), nil
	}

	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Profile{}, fmt.Errorf("prefs.Store.LoadProfile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return models.Profile{}, fmt.Errorf("prefs.Store.LoadProfile: %w", err)
	}
	return p, nil
}

func (s *Store) SaveProfile(ctx context.Context, p models.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("prefs.Store.SaveProfile: %w", err)
	}
	if err := s.kv.Set(ctx, KeyProfile, p); err != nil {
		return fmt.Errorf("prefs.Store.SaveProfile: %w", err)
	}
	return nil
}
