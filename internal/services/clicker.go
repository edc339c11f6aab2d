package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/dmitrijs2005/gophbank/internal/timex"
)

// ClickResult is the outcome of one manual click.
type ClickResult struct {
	Earned      int64
	Balance     int64
	TotalEarned int64
	ClicksToday int64
	DailyLimit  int64
}

// UpgradeResult is the outcome of a successful upgrade purchase.
type UpgradeResult struct {
	Type    models.UpgradeType
	Level   int
	Cost    int64
	Balance int64
}

// resetDaily zeroes the daily counter when u's last click day differs from
// the day of now. It reports whether a reset happened.
func (b *Bank) resetDaily(u *models.User, now time.Time) bool {
	today := timex.DayKey(now)
	if u.LastClickDate == today {
		return false
	}
	u.ClicksToday = 0
	u.LastClickDate = today
	return true
}

// Click earns one click's worth of currency for the session user.
func (b *Bank) Click(ctx context.Context) (*ClickResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, err := b.requireSession()
	if err != nil {
		return nil, err
	}

	now := b.now()
	var (
		res   ClickResult
		fresh *models.User
	)
	err = b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(cur.ID)
		if u == nil {
			return common.ErrUserNotFound
		}

		b.resetDaily(u, now)
		if u.ClicksToday >= b.policy.DailyClickLimit {
			return common.ErrDailyLimitReached
		}

		earned := b.policy.ClickEarning(u)
		card := applyDelta(snap, u, earned)
		u.TotalEarned += earned
		u.Clicks++
		u.ClicksToday++

		var details models.TransactionDetails
		if card != nil {
			details.CardNumber = card.Number
		}
		snap.Append(newTransaction(u.ID, models.TransactionClicker, earned, "Click income", details, now))

		res = ClickResult{
			Earned:      earned,
			Balance:     u.Balance,
			TotalEarned: u.TotalEarned,
			ClicksToday: u.ClicksToday,
			DailyLimit:  b.policy.DailyClickLimit,
		}
		fresh = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.session = fresh
	return &res, nil
}

// BuyUpgrade raises the session user's level of upgrade t by one. Buying the
// auto-clicker starts the auto-earning ticker.
func (b *Bank) BuyUpgrade(ctx context.Context, t models.UpgradeType) (*UpgradeResult, error) {
	var stale *autoClicker
	defer func() { stale.Stop() }()

	b.mu.Lock()
	defer b.mu.Unlock()

	cur, err := b.requireSession()
	if err != nil {
		return nil, err
	}
	spec, ok := b.policy.Upgrades[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownUpgrade, t)
	}

	now := b.now()
	var (
		res   UpgradeResult
		fresh *models.User
	)
	err = b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(cur.ID)
		if u == nil {
			return common.ErrUserNotFound
		}

		level := u.Level(t)
		if level >= spec.MaxLevel {
			return common.ErrMaxLevelReached
		}
		cost := spec.Cost(level)
		if u.Balance < cost {
			return common.ErrInsufficientFunds
		}

		card := applyDelta(snap, u, -cost)
		u.SetLevel(t, level+1)

		var details models.TransactionDetails
		if card != nil {
			details.CardNumber = card.Number
		}
		desc := fmt.Sprintf("%s upgrade to level %d", spec.Title, level+1)
		snap.Append(newTransaction(u.ID, models.TransactionUpgrade, -cost, desc, details, now))

		res = UpgradeResult{Type: t, Level: level + 1, Cost: cost, Balance: u.Balance}
		fresh = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.log.Info(ctx, "upgrade purchased", "user_id", fresh.ID, "upgrade", t, "level", res.Level, "cost", res.Cost)
	stale = b.setSession(fresh)
	return &res, nil
}

// Upgrades describes every upgrade for the session user.
func (b *Bank) Upgrades(ctx context.Context) ([]models.UpgradeView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	u, err := b.refreshSession(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.UpgradeView, 0, len(models.UpgradeTypes))
	for _, t := range models.UpgradeTypes {
		spec, ok := b.policy.Upgrades[t]
		if !ok {
			continue
		}
		level := u.Level(t)
		v := models.UpgradeView{
			Type:     t,
			Level:    level,
			MaxLevel: spec.MaxLevel,
			Effect:   b.effect(t, spec, u),
			Maxed:    level >= spec.MaxLevel,
		}
		if !v.Maxed {
			v.NextCost = spec.Cost(level)
		}
		if spec.MaxLevel > 0 {
			v.Progress = level * 100 / spec.MaxLevel
		}
		views = append(views, v)
	}
	return views, nil
}

func (b *Bank) effect(t models.UpgradeType, spec UpgradeSpec, u *models.User) string {
	if t == models.UpgradeAutoClicker {
		return "+" + money.Format(b.policy.AutoRate(u)) + " per tick"
	}
	return "x" + strconv.FormatFloat(spec.Multiplier(u.Level(t)), 'f', -1, 64)
}
