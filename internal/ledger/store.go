// Package ledger persists users, cards and the transaction log as JSON
// collections in the key-value store. Every mutation loads the collections,
// applies a change and writes them back inside a single database transaction.
package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophbank/internal/dbx"
	"github.com/dmitrijs2005/gophbank/internal/repositories/kv"
)

// Persisted keys.
const (
	KeyUsers        = "bank.users"
	KeyCards        = "bank.cards"
	KeyTransactions = "bank.transactions"
	KeySession      = "bank.session"
)

// ErrNoChange may be returned by an Update callback that decided not to
// modify anything. The transaction is rolled back and Update returns nil.
var ErrNoChange = errors.New("no change")

// Store is the ledger persistence layer.
type Store struct {
	db   *sql.DB
	repo kv.Factory
}

// NewStore binds a Store to db using repositories produced by f.
func NewStore(db *sql.DB, f kv.Factory) *Store {
	return &Store{db: db, repo: f}
}

// View loads a snapshot and passes it to fn. Changes made by fn are discarded.
func (s *Store) View(ctx context.Context, fn func(snap *Snapshot) error) error {
	snap, err := load(ctx, s.repo(s.db))
	if err != nil {
		return err
	}
	return fn(snap)
}

// Update loads a snapshot, lets fn mutate it and writes every collection back
// in one transaction. If fn fails nothing is written.
func (s *Store) Update(ctx context.Context, fn func(snap *Snapshot) error) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		snap, err := load(ctx, repo)
		if err != nil {
			return err
		}
		if err := fn(snap); err != nil {
			return err
		}
		return save(ctx, repo, snap)
	})
	if errors.Is(err, ErrNoChange) {
		return nil
	}
	return err
}

// SessionToken returns the persisted session token, or "" when absent.
func (s *Store) SessionToken(ctx context.Context) (string, error) {
	v, err := s.repo(s.db).Get(ctx, KeySession)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetSessionToken persists token.
func (s *Store) SetSessionToken(ctx context.Context, token string) error {
	return s.repo(s.db).Set(ctx, KeySession, []byte(token))
}

// ClearSessionToken removes the persisted token. Missing tokens are ignored.
func (s *Store) ClearSessionToken(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, KeySession)
}

// Reset erases every stored collection and the session token.
func (s *Store) Reset(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}

func load(ctx context.Context, repo kv.Repository) (*Snapshot, error) {
	stored, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	if err := decode(stored, KeyUsers, &snap.Users); err != nil {
		return nil, err
	}
	if err := decode(stored, KeyCards, &snap.Cards); err != nil {
		return nil, err
	}
	if err := decode(stored, KeyTransactions, &snap.Transactions); err != nil {
		return nil, err
	}
	return snap, nil
}

func decode(stored map[string][]byte, key string, dst any) error {
	raw := stored[key]
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func save(ctx context.Context, repo kv.Repository, snap *Snapshot) error {
	for _, item := range []struct {
		key string
		val any
	}{
		{KeyUsers, snap.Users},
		{KeyCards, snap.Cards},
		{KeyTransactions, snap.Transactions},
	} {
		raw, err := json.Marshal(item.val)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", item.key, err)
		}
		if err := repo.Set(ctx, item.key, raw); err != nil {
			return err
		}
	}
	return nil
}
