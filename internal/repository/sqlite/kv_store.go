package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/vytor/chronoquest/internal/logger"
	"github.com/vytor/chronoquest/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const kvTable = "kv_store"

type kvStore struct {
	db *sql.DB
}

// NewKeyValueStore creates a KeyValueStore backed by the kv_store table.
func NewKeyValueStore(db *sql.DB) repository.KeyValueStore {
	return &kvStore{db: db}
}

func (r *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("getting key: %s", key)

	query, args, err := sqlBuilder.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("key not found: %s", key)
		return "", false, nil
	}
	if err != nil {
		log.Error("failed to get key %s: %v", key, err)
		return "", false, err
	}
	return value, true, nil
}

func (r *kvStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	log.Debug("setting key: %s", key)

	query, args, err := sqlBuilder.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to set key %s: %v", key, err)
		return err
	}
	return nil
}
