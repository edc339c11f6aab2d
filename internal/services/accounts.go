package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/auth"
	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/cryptox"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/timex"
	"github.com/go-playground/validator/v10"
)

type registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"min=6"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isEmail reports whether s looks like an email address.
func (b *Bank) isEmail(s string) bool {
	return b.validate.Var(s, "required,email") == nil
}

func (b *Bank) validateRegistration(r registration) error {
	err := b.validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation: %w", err)
	}
	switch verrs[0].Field() {
	case "Name":
		return common.ErrInvalidName
	case "Email":
		return common.ErrInvalidEmail
	default:
		return common.ErrWeakPassword
	}
}

// Register creates an account with the starting bonus and a default debit
// card, then logs the new user in.
func (b *Bank) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	r := registration{Name: strings.TrimSpace(name), Email: normalizeEmail(email), Password: password}
	if err := b.validateRegistration(r); err != nil {
		return nil, err
	}
	hash := cryptox.HashPassword([]byte(password))

	var stale *autoClicker
	defer func() { stale.Stop() }()

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	bonus := b.policy.StartingBonus

	var user *models.User
	err := b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		if snap.UserByEmail(r.Email) != nil {
			return common.ErrDuplicateEmail
		}

		u := &models.User{
			ID:            newID(prefixUser),
			Email:         r.Email,
			PasswordHash:  hash,
			Name:          r.Name,
			Balance:       bonus,
			LastClickDate: timex.DayKey(now),
			Upgrades:      map[models.UpgradeType]int{},
			Tier:          models.TierStandard,
			CreatedAt:     now,
			LastLoginAt:   now,
		}
		card, err := b.newCard(snap, u, models.CardTypeDebit, now)
		if err != nil {
			return err
		}
		card.Balance = bonus

		snap.Users = append(snap.Users, u)
		snap.Append(newTransaction(u.ID, models.TransactionBonus, bonus, "Welcome bonus",
			models.TransactionDetails{CardNumber: card.Number}, now))

		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.log.Info(ctx, "user registered", "user_id", user.ID, "bonus", bonus)
	stale = b.setSession(user.Clone())
	b.persistSession(ctx, user.ID)
	return user, nil
}

// Login authenticates by email and password and resets the daily click
// quota when the calendar day has changed.
func (b *Bank) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	var stale *autoClicker
	defer func() { stale.Stop() }()

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()

	var user *models.User
	err := b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByEmail(email)
		if u == nil {
			return common.ErrInvalidCredentials
		}
		ok, err := cryptox.VerifyPassword(u.PasswordHash, []byte(password))
		if err != nil {
			return fmt.Errorf("verify password: %w", err)
		}
		if !ok {
			return common.ErrInvalidCredentials
		}

		if b.resetDaily(u, now) {
			b.log.Debug(ctx, "daily click quota reset", "user_id", u.ID)
		}
		u.LastLoginAt = now
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.log.Info(ctx, "user logged in", "user_id", user.ID)
	stale = b.setSession(user.Clone())
	b.persistSession(ctx, user.ID)
	return user, nil
}

// Logout ends the session and stops the auto-earning ticker. Calling it
// without a session is a no-op apart from clearing any persisted token.
func (b *Bank) Logout(ctx context.Context) error {
	var stale *autoClicker
	defer func() { stale.Stop() }()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session != nil {
		b.log.Info(ctx, "user logged out", "user_id", b.session.ID)
	}
	stale = b.setSession(nil)
	return b.store.ClearSessionToken(ctx)
}

// Reset ends the session and erases every account, card and transaction
// stored on this device.
func (b *Bank) Reset(ctx context.Context) error {
	var stale *autoClicker
	defer func() { stale.Stop() }()

	b.mu.Lock()
	defer b.mu.Unlock()

	stale = b.setSession(nil)
	if err := b.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	b.log.Info(ctx, "all local data erased")
	return nil
}

// Restore resumes the session persisted by a previous run. The user is
// reloaded from the store, not from any cached copy.
func (b *Bank) Restore(ctx context.Context) (*models.User, error) {
	var stale *autoClicker
	defer func() { stale.Stop() }()

	b.mu.Lock()
	defer b.mu.Unlock()

	token, err := b.store.SessionToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, common.ErrNoSession
	}

	now := b.now()
	userID, err := auth.GetUserIDFromToken(token, b.secret, now)
	if err != nil {
		b.log.Info(ctx, "discarding persisted session", "error", err)
		b.dropSessionToken(ctx)
		return nil, fmt.Errorf("%w: %w", common.ErrNoSession, err)
	}

	var user *models.User
	err = b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(userID)
		if u == nil {
			return common.ErrNoSession
		}
		reset := b.resetDaily(u, now)
		user = u.Clone()
		if !reset {
			return ledger.ErrNoChange
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			b.dropSessionToken(ctx)
		}
		return nil, err
	}

	b.log.Info(ctx, "session restored", "user_id", user.ID)
	stale = b.setSession(user.Clone())
	return user, nil
}

// CurrentUser returns a fresh copy of the session user.
func (b *Bank) CurrentUser(ctx context.Context) (*models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.refreshSession(ctx)
	if err != nil {
		return nil, err
	}
	return u.Clone(), nil
}
