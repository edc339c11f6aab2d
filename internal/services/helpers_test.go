package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/storage"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type env struct {
	bank  *Bank
	store *ledger.Store
	clock *fakeClock
	opts  Options
}

func newStoreForTest(t *testing.T) *ledger.Store {
	t.Helper()
	d, err := storage.Open(context.Background(), storage.DriverSQLite, filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return ledger.NewStore(d.DB, d.KV)
}

func newEnv(t *testing.T, tweak ...func(*Options)) *env {
	t.Helper()
	clock := newClock()
	opts := Options{
		Clock:             clock.Now,
		SessionSecret:     []byte("test-secret"),
		SessionTTL:        time.Hour,
		AutoClickInterval: 10 * time.Millisecond,
	}
	for _, f := range tweak {
		f(&opts)
	}
	e := &env{store: newStoreForTest(t), clock: clock, opts: opts}
	e.bank = e.newBank(t)
	return e
}

// newBank creates another Bank over the same store, like a second run.
func (e *env) newBank(t *testing.T) *Bank {
	t.Helper()
	b := NewBank(e.store, e.opts)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func withPolicy(p Policy) func(*Options) {
	return func(o *Options) { o.Policy = &p }
}

func (e *env) register(t *testing.T, name, email string) *models.User {
	t.Helper()
	u, err := e.bank.Register(context.Background(), name, email, "secret1")
	require.NoError(t, err)
	return u
}

func (e *env) user(t *testing.T, id string) *models.User {
	t.Helper()
	var out *models.User
	require.NoError(t, e.store.View(context.Background(), func(snap *ledger.Snapshot) error {
		out = snap.UserByID(id).Clone()
		return nil
	}))
	require.NotNil(t, out)
	return out
}

func (e *env) mutateUser(t *testing.T, id string, fn func(u *models.User)) {
	t.Helper()
	require.NoError(t, e.store.Update(context.Background(), func(snap *ledger.Snapshot) error {
		fn(snap.UserByID(id))
		return nil
	}))
}

func (e *env) defaultCard(t *testing.T, userID string) models.Card {
	t.Helper()
	var out models.Card
	require.NoError(t, e.store.View(context.Background(), func(snap *ledger.Snapshot) error {
		c := snap.DefaultCard(userID)
		require.NotNil(t, c)
		out = *c
		return nil
	}))
	return out
}

func (e *env) transactions(t *testing.T, userID string) []*models.Transaction {
	t.Helper()
	var out []*models.Transaction
	require.NoError(t, e.store.View(context.Background(), func(snap *ledger.Snapshot) error {
		out = snap.TransactionsOf(userID)
		return nil
	}))
	return out
}

func (e *env) requireLedger(t *testing.T, userIDs ...string) {
	t.Helper()
	for _, id := range userIDs {
		require.NoError(t, e.bank.VerifyLedger(context.Background(), id), "ledger of %s", id)
	}
}
