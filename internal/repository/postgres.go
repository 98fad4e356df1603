package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"licitemos/internal/config"
	postgres "licitemos/internal/repository/db"
)

// Repository stores preference blobs in a single kv_store table.
type Repository struct {
	db  *sql.DB
	cfg *config.PostgresConfig
}

func NewRepository(db *sql.DB, cfg *config.PostgresConfig) (*Repository, error) {
	var err error

	repo := &Repository{
		db:  db,
		cfg: cfg,
	}

	if repo.cfg == nil {
		repo.cfg, err = config.NewPostgresConfig()
		if err != nil {
			return nil, fmt.Errorf("repository.NewRepository: could not load postgres config: %w", err)
		}
	}

	if repo.db == nil {
		repo.db, err = postgres.NewPostgresDB(repo.cfg)
		if err != nil {
			return nil, fmt.Errorf("repository.NewRepository: could not open postgres db: %w", err)
		}
	}

	if repo.cfg.AutoMigrateUp == "true" {
		err = repo.MigrateUp()
		if err != nil {
			return nil, err
		}
	}

	return repo, nil
}

func (repo *Repository) MigrateUp() error {
	err := postgres.MigrateUp(repo.db, repo.cfg.MigrationsURL)
	if err != nil {
		return fmt.Errorf("repository.Repository.MigrateUp: %w", err)
	}
	return nil
}

func (repo *Repository) MigrateDown() error {
	err := postgres.MigrateDown(repo.db, repo.cfg.MigrationsURL)
	if err != nil {
		return fmt.Errorf("repository.Repository.MigrateDown: %w", err)
	}
	return nil
}

func (repo *Repository) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value []byte
	query := `
	SELECT value
	FROM kv_store
	WHERE key = $1
	LIMIT 1
	`
	row := repo.db.QueryRowContext(ctx, query, key)
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("repository.Repository.Get: %w", err)
	}

	return json.RawMessage(value), true, nil
}

func (repo *Repository) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := repo.db.ExecContext(ctx, query, key, []byte(value))
	if err != nil {
		return fmt.Errorf("repository.Repository.Set: %w", err)
	}
	return nil
}

func (repo *Repository) Delete(ctx context.Context, key string) error {
	query := `
	DELETE FROM kv_store
	WHERE key = $1
	`
	_, err := repo.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("repository.Repository.Delete: %w", err)
	}
	return nil
}

func (repo *Repository) Close() error {
	if repo.cfg.AutoMigrateDown == "true" {
		err := repo.MigrateDown()
		if err != nil {
			return err
		}
	}

	err := repo.db.Close()
	if err != nil {
		return fmt.Errorf("repository.Repository.Close: %w", err)
	}
	return nil
}
