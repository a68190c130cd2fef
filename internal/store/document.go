package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// documentRepo implements DocumentRepo on the documents table.
type documentRepo struct {
	store *Store
}

func (r *documentRepo) GetJSON(ctx context.Context, key string, kind Kind, out any) error {
	query, args := r.store.builder.Select("value").
		From(entsql.Table(documentsTable)).
		Where(entsql.EQ("name", key)).
		Query()

	var raw string
	err := r.store.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("query document %q: %w", key, err)
	}

	data, err := openEnvelope([]byte(raw), kind)
	if err != nil {
		return fmt.Errorf("read document %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode document %q: %w", key, err)
	}
	return nil
}

func (r *documentRepo) PutJSON(ctx context.Context, key string, kind Kind, v any) error {
	raw, err := sealEnvelope(kind, v)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", key, err)
	}

	query, args := r.store.builder.Insert(documentsTable).
		Columns("name", "value", "updated_at").
		Values(key, string(raw), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.store.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}

	r.store.logger.Debug("document saved", "key", key, "kind", kind.Name)
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, key string) error {
	query, args := r.store.builder.Delete(documentsTable).
		Where(entsql.EQ("name", key)).
		Query()
	if _, err := r.store.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}

	r.store.logger.Debug("document deleted", "key", key)
	return nil
}

func (r *documentRepo) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args := r.store.builder.Select("name").
		From(entsql.Table(documentsTable)).
		Where(entsql.HasPrefix("name", prefix)).
		OrderBy("name").
		Query()

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query keys %q: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}
	return keys, nil
}
