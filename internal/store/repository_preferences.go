package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmatveev/swarm-console/internal/logger"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
}

// NewPreferenceRepository returns the SQLite-backed implementation of
// [PreferenceRepository].
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{DB: db, logger: logger}
}

func (r *preferenceRepository) Get(ctx context.Context, name string) (string, error) {
	query, args, err := sq.Select("value").
		From("preferences").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build preference select: %w", err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "preferenceRepository.Get").Str("name", name).Msg("failed to read preference")
		return "", fmt.Errorf("read preference %q: %w", name, err)
	}

	return value, nil
}

func (r *preferenceRepository) Set(ctx context.Context, name string, value string) error {
	query, args, err := sq.Insert("preferences").
		Columns("name", "value", "updated_at").
		Values(name, value, time.Now().UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build preference upsert: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "preferenceRepository.Set").Str("name", name).Msg("failed to write preference")
		return fmt.Errorf("write preference %q: %w", name, err)
	}

	return nil
}

func (r *preferenceRepository) Delete(ctx context.Context, name string) error {
	query, args, err := sq.Delete("preferences").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build preference delete: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "preferenceRepository.Delete").Str("name", name).Msg("failed to delete preference")
		return fmt.Errorf("delete preference %q: %w", name, err)
	}

	return nil
}
