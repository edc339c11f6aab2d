package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
)

// autoClicker is the background task crediting auto-clicker income for one
// session user.
type autoClicker struct {
	userID string
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the ticker and waits for its goroutine to exit. It is safe to
// call more than once and on a nil receiver. It must not be called with
// Bank.mu held.
func (a *autoClicker) Stop() {
	if a == nil {
		return
	}
	a.once.Do(func() {
		a.cancel()
		<-a.done
	})
}

func (b *Bank) startAutoClicker(userID string) *autoClicker {
	ctx, cancel := context.WithCancel(context.Background())
	ac := &autoClicker{userID: userID, cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(ac.done)

		t := time.NewTicker(b.autoInterval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				b.emit(ctx, b.autoTick(ctx, ac))
			}
		}
	}()

	b.log.Debug(ctx, "auto-clicker started", "user_id", userID, "interval", b.autoInterval)
	return ac
}

// syncTicker starts the ticker when the session user owns the auto-clicker
// and detaches it otherwise. Callers hold b.mu and stop the returned ticker
// after releasing it.
func (b *Bank) syncTicker() *autoClicker {
	u := b.session
	want := u != nil && b.policy.AutoRate(u) > 0

	var stale *autoClicker
	if b.ticker != nil && (!want || b.ticker.userID != u.ID) {
		stale = b.detachTicker()
	}
	if want && b.ticker == nil {
		b.ticker = b.startAutoClicker(u.ID)
	}
	return stale
}

// detachTicker clears b.ticker and returns it. Callers hold b.mu.
func (b *Bank) detachTicker() *autoClicker {
	ac := b.ticker
	b.ticker = nil
	return ac
}

// autoTick credits one interval of auto-clicker income while the daily quota
// allows it. Ticks do not count towards clicksToday.
func (b *Bank) autoTick(ctx context.Context, ac *autoClicker) *models.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ticker != ac || b.session == nil || b.session.ID != ac.userID {
		return nil
	}

	now := b.now()
	var (
		earned int64
		fresh  *models.User
	)
	err := b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(ac.userID)
		if u == nil {
			return common.ErrUserNotFound
		}

		reset := b.resetDaily(u, now)
		rate := b.policy.AutoRate(u)
		if rate <= 0 || u.ClicksToday >= b.policy.DailyClickLimit {
			if reset {
				fresh = u.Clone()
				return nil
			}
			return ledger.ErrNoChange
		}

		card := applyDelta(snap, u, rate)
		u.TotalEarned += rate

		var details models.TransactionDetails
		if card != nil {
			details.CardNumber = card.Number
		}
		snap.Append(newTransaction(u.ID, models.TransactionAutoClicker, rate, "Auto-clicker income", details, now))

		earned = rate
		fresh = u.Clone()
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		b.log.Error(ctx, "auto-clicker tick failed", "user_id", ac.userID, "error", err)
		return &models.Notification{Message: "Auto-clicker failed: " + err.Error(), Severity: models.SeverityError}
	}

	if fresh != nil {
		b.session = fresh
	}
	if earned == 0 {
		return nil
	}

	b.log.Debug(ctx, "auto-clicker credited", "user_id", ac.userID, "amount", earned)
	return &models.Notification{
		Message:  "Auto-clicker: +" + money.Format(earned),
		Severity: models.SeverityInfo,
	}
}
