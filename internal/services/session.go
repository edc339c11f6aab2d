package services

import (
	"context"

	"github.com/dmitrijs2005/gophbank/internal/auth"
	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
)

// requireSession returns the cached session user. Callers hold b.mu.
func (b *Bank) requireSession() (*models.User, error) {
	if b.session == nil {
		return nil, common.ErrUnauthorized
	}
	return b.session, nil
}

// setSession replaces the session user and reconciles the ticker with it.
// The returned ticker, if any, must be stopped after b.mu is released.
// Callers hold b.mu.
func (b *Bank) setSession(u *models.User) *autoClicker {
	b.session = u
	return b.syncTicker()
}

// persistSession writes a signed token so the next run can restore the
// session. Failures only cost reload continuity, so they are logged.
func (b *Bank) persistSession(ctx context.Context, userID string) {
	token, err := auth.GenerateToken(userID, b.secret, b.sessionTTL, b.now())
	if err != nil {
		b.log.Warn(ctx, "failed to sign session token", "error", err)
		return
	}
	if err := b.store.SetSessionToken(ctx, token); err != nil {
		b.log.Warn(ctx, "failed to persist session token", "error", err)
	}
}

// dropSessionToken removes a persisted token that can no longer be used.
func (b *Bank) dropSessionToken(ctx context.Context) {
	if err := b.store.ClearSessionToken(ctx); err != nil {
		b.log.Warn(ctx, "failed to clear session token", "error", err)
	}
}

// refreshSession reloads the session user from the store. Callers hold b.mu.
func (b *Bank) refreshSession(ctx context.Context) (*models.User, error) {
	cur, err := b.requireSession()
	if err != nil {
		return nil, err
	}

	var fresh *models.User
	err = b.store.View(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(cur.ID)
		if u == nil {
			return common.ErrUserNotFound
		}
		fresh = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.session = fresh
	return fresh, nil
}
