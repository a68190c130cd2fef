package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document exists under a key.
	ErrNotFound = errors.New("store: document not found")

	// ErrIncompatibleVersion is returned when a stored document was written
	// by an incompatible format version.
	ErrIncompatibleVersion = errors.New("store: incompatible document version")

	// ErrKindMismatch is returned when a document is read as a different
	// kind than it was written as.
	ErrKindMismatch = errors.New("store: document kind mismatch")
)

// Kind names a stored document type. Schema, when set, is a JSON Schema
// (draft 2020-12) the document payload must satisfy on read.
type Kind struct {
	Name   string
	Schema map[string]any
}

// DocumentRepo provides JSON document access by key.
type DocumentRepo interface {
	// GetJSON decodes the document at key into out.
	// Returns ErrNotFound if the key does not exist.
	GetJSON(ctx context.Context, key string, kind Kind, out any) error

	// PutJSON encodes v and stores it at key, replacing any previous value.
	PutJSON(ctx context.Context, key string, kind Kind, v any) error

	// Delete removes the document at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys with the given prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
