package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"licitemos/internal/fixtures"
	"licitemos/internal/models"
)

const dateLayout = "2006-01-02"

// SavedSearches returns the persisted list, or the seeded starter list
// when the user has never saved one.
func (s *Store) SavedSearches(ctx context.Context) ([]models.SavedSearch, error) {
	raw, found, err := s.kv.Get(ctx, KeySavedSearches)
	if err != nil {
		return nil, fmt.Errorf("prefs.Store.SavedSearches: %w", err)
	}
	if !found {
		return fixtures.SavedSearches(), nil
	}

	var list []models.SavedSearch
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("prefs.Store.SavedSearches: %w", err)
	}
	return list, nil
}

func (s *Store) AddSavedSearch(ctx context.Context, name, description string, filters models.SearchFilters) (models.SavedSearch, error) {
	search := models.SavedSearch{
		Id:          uuid.NewString(),
		Name:        name,
		Description: description,
		Filters:     filters,
		CreatedAt:   time.Now().UTC().Format(dateLayout),
	}
	if err := search.Validate(); err != nil {
		return models.SavedSearch{}, fmt.Errorf("prefs.Store.AddSavedSearch: %w", err)
	}

	err := s.mutateSavedSearches(ctx, func(list []models.SavedSearch) ([]models.SavedSearch, error) {
		return append(list, search), nil
	})
	if err != nil {
		return models.SavedSearch{}, fmt.Errorf("prefs.Store.AddSavedSearch: %w", err)
	}
	return search, nil
}

func (s *Store) RemoveSavedSearch(ctx context.Context, id string) error {
	err := s.mutateSavedSearches(ctx, func(list []models.SavedSearch) ([]models.SavedSearch, error) {
		out := list[:0]
		for _, search := range list {
			if search.Id != id {
				out = append(out, search)
			}
		}
		return out, nil
	})
	if err != nil {
		return fmt.Errorf("prefs.Store.RemoveSavedSearch: %w", err)
	}
	return nil
}

func (s *Store) RenameSavedSearch(ctx context.Context, id, name, description string) error {
	err := s.updateSavedSearch(ctx, id, func(search *models.SavedSearch) {
		search.Name = name
		search.Description = description
	})
	if err != nil {
		return fmt.Errorf("prefs.Store.RenameSavedSearch: %w", err)
	}
	return nil
}

func (s *Store) ToggleSavedSearchFavorite(ctx context.Context, id string) error {
	err := s.updateSavedSearch(ctx, id, func(search *models.SavedSearch) {
		search.Favorite = !search.Favorite
	})
	if err != nil {
		return fmt.Errorf("prefs.Store.ToggleSavedSearchFavorite: %w", err)
	}
	return nil
}

// TouchSavedSearch records one use of a search: bumps the counter and the
// last-used date.
func (s *Store) TouchSavedSearch(ctx context.Context, id string) error {
	err := s.updateSavedSearch(ctx, id, func(search *models.SavedSearch) {
		search.UseCount++
		search.LastUsedAt = time.Now().UTC().Format(dateLayout)
	})
	if err != nil {
		return fmt.Errorf("prefs.Store.TouchSavedSearch: %w", err)
	}
	return nil
}

// mutateSavedSearches is the single funnel for every list edit: read the
// whole list, apply the change, write the whole list back. Two sessions
// editing concurrently race with last-write-wins; if the service ever
// grows per-item keys or list operations, this is the one place to adopt
// them.
func (s *Store) mutateSavedSearches(ctx context.Context, fn func([]models.SavedSearch) ([]models.SavedSearch, error)) error {
	list, err := s.SavedSearches(ctx)
	if err != nil {
		return err
	}

	list, err = fn(list)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, KeySavedSearches, list); err != nil {
		return err
	}
	return nil
}

func (s *Store) updateSavedSearch(ctx context.Context, id string, update func(*models.SavedSearch)) error {
	return s.mutateSavedSearches(ctx, func(list []models.SavedSearch) ([]models.SavedSearch, error) {
		for i := range list {
			if list[i].Id == id {
				update(&list[i])
				return list, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", models.ErrNoSavedSearch, id)
	})
}
