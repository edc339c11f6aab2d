package kv

import (
	"context"

	"github.com/dmitrijs2005/gophbank/internal/dbx"
)

// Repository is a byte-valued key-value store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Factory binds a Repository to a database handle, typically a transaction.
type Factory func(db dbx.DBTX) Repository
