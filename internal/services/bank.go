// Package services implements the bank engines: accounts and sessions, card
// issuance, transfers, the clicker economy with its auto-earning ticker, and
// transaction history. A single Bank value owns the session and serializes
// every mutation.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/logging"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/go-playground/validator/v10"
)

// Notifier receives events the user did not directly ask for.
type Notifier func(n models.Notification)

// Options configure a Bank. Zero values fall back to defaults.
type Options struct {
	Policy            *Policy
	Logger            logging.Logger
	Clock             func() time.Time
	SessionSecret     []byte
	SessionTTL        time.Duration
	AutoClickInterval time.Duration
	HistoryLimit      int
	Notifier          Notifier
}

const (
	defaultSessionTTL   = 30 * 24 * time.Hour
	defaultAutoInterval = time.Second
	defaultHistoryLimit = 50
)

// Bank is the engine facade used by the presentation layer.
type Bank struct {
	mu sync.Mutex

	store    *ledger.Store
	policy   Policy
	log      logging.Logger
	now      func() time.Time
	validate *validator.Validate

	secret       []byte
	sessionTTL   time.Duration
	autoInterval time.Duration
	historyLimit int
	notify       Notifier

	session *models.User
	ticker  *autoClicker
}

// NewBank wires a Bank over store.
func NewBank(store *ledger.Store, opts Options) *Bank {
	b := &Bank{
		store:        store,
		policy:       DefaultPolicy(),
		log:          opts.Logger,
		now:          opts.Clock,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		secret:       opts.SessionSecret,
		sessionTTL:   opts.SessionTTL,
		autoInterval: opts.AutoClickInterval,
		historyLimit: opts.HistoryLimit,
		notify:       opts.Notifier,
	}
	if opts.Policy != nil {
		b.policy = *opts.Policy
	}
	if b.log == nil {
		b.log = logging.Nop()
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.sessionTTL <= 0 {
		b.sessionTTL = defaultSessionTTL
	}
	if b.autoInterval <= 0 {
		b.autoInterval = defaultAutoInterval
	}
	if b.historyLimit <= 0 {
		b.historyLimit = defaultHistoryLimit
	}
	if len(b.secret) == 0 {
		// Tokens signed with a random key only survive this process.
		b.secret = common.GenerateRandByteArray(32)
	}
	return b
}

// Policy returns the economy parameters in effect.
func (b *Bank) Policy() Policy {
	return b.policy
}

// SetNotifier replaces the notification callback.
func (b *Bank) SetNotifier(n Notifier) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notify = n
}

// Close stops the auto-earning ticker. The session token stays persisted so
// the next run can restore it.
func (b *Bank) Close() error {
	b.mu.Lock()
	stale := b.detachTicker()
	b.mu.Unlock()

	stale.Stop()
	return nil
}

// AutoClickerRunning reports whether the ticker is active.
func (b *Bank) AutoClickerRunning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ticker != nil
}

func (b *Bank) emit(ctx context.Context, n *models.Notification) {
	if n == nil {
		return
	}
	b.mu.Lock()
	notify := b.notify
	b.mu.Unlock()

	if notify != nil {
		notify(*n)
		return
	}
	b.log.Debug(ctx, "notification dropped", "message", n.Message)
}

func newTransaction(userID string, typ models.TransactionType, amount int64, desc string,
	details models.TransactionDetails, now time.Time) *models.Transaction {
	return &models.Transaction{
		ID:          newID(prefixTransaction),
		UserID:      userID,
		Type:        typ,
		Amount:      amount,
		Description: desc,
		Status:      models.StatusCompleted,
		Details:     details,
		CreatedAt:   now,
	}
}

// applyDelta moves u's balance by delta and mirrors it on the default card.
func applyDelta(snap *ledger.Snapshot, u *models.User, delta int64) *models.Card {
	u.Balance += delta
	card := snap.DefaultCard(u.ID)
	if card != nil {
		card.Balance += delta
	}
	return card
}
