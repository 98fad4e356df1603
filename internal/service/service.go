package service

import (
	"context"
	"encoding/json"
	"fmt"

	"licitemos/internal/models"
	"licitemos/internal/repository"
)

// Service fronts the key-value storage. The store is schemaless on
// purpose; the only validation here is that a key was actually supplied.
type Service struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *Service {
	return &Service{storage: storage}
}

func (s *Service) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("service.Service.Get: %w", models.ErrEmptyKey)
	}

	value, found, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("service.Service.Get: %w", err)
	}
	return value, found, nil
}

func (s *Service) Set(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return fmt.Errorf("service.Service.Set: %w", models.ErrEmptyKey)
	}
	if len(value) == 0 {
		value = json.RawMessage("null")
	}

	err := s.storage.Set(ctx, key, value)
	if err != nil {
		return fmt.Errorf("service.Service.Set: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("service.Service.Delete: %w", models.ErrEmptyKey)
	}

	err := s.storage.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("service.Service.Delete: %w", err)
	}
	return nil
}
