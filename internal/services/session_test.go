package services

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/dbx"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/logging"
	"github.com/dmitrijs2005/gophbank/internal/repositories/kv"
	"github.com/dmitrijs2005/gophbank/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readOnlyRepo refuses deletes, like a store on a read-only volume.
type readOnlyRepo struct {
	kv.Repository
}

func (readOnlyRepo) Delete(ctx context.Context, key string) error {
	return errors.New("disk is read-only")
}

func TestRestore_LogsWhenTokenCannotBeCleared(t *testing.T) {
	ctx := context.Background()
	d, err := storage.Open(ctx, storage.DriverSQLite, filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	store := ledger.NewStore(d.DB, func(db dbx.DBTX) kv.Repository {
		return readOnlyRepo{Repository: d.KV(db)}
	})
	require.NoError(t, store.SetSessionToken(ctx, "not-a-jwt"))

	var logs bytes.Buffer
	b := NewBank(store, Options{
		Logger:        logging.NewTextLogger(&logs, "warn"),
		SessionSecret: []byte("test-secret"),
	})
	t.Cleanup(func() { _ = b.Close() })

	_, err = b.Restore(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
	assert.Contains(t, logs.String(), "failed to clear session token")
	assert.Contains(t, logs.String(), "disk is read-only")

	tok, err := store.SessionToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", tok)
}
