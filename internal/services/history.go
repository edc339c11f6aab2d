package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
)

// History returns the session user's most recent transactions, newest first,
// capped at the configured history limit.
func (b *Bank) History(ctx context.Context) ([]models.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, err := b.requireSession()
	if err != nil {
		return nil, err
	}

	var out []models.Transaction
	err = b.store.View(ctx, func(snap *ledger.Snapshot) error {
		for _, t := range snap.TransactionsOf(cur.ID) {
			if len(out) == b.historyLimit {
				break
			}
			out = append(out, *t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearHistory removes the session user's transactions and returns how many
// were dropped. Their net effect moves into the user's ledger baseline so
// VerifyLedger keeps holding.
func (b *Bank) ClearHistory(ctx context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, err := b.requireSession()
	if err != nil {
		return 0, err
	}

	var (
		removed int
		fresh   *models.User
	)
	err = b.store.Update(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(cur.ID)
		if u == nil {
			return common.ErrUserNotFound
		}
		txs := snap.RemoveTransactionsOf(u.ID)
		if len(txs) == 0 {
			return ledger.ErrNoChange
		}
		u.LedgerBaseline += netEffect(txs)
		removed = len(txs)
		fresh = u.Clone()
		return nil
	})
	if err != nil {
		return 0, err
	}

	if fresh != nil {
		b.session = fresh
		b.log.Info(ctx, "history cleared", "user_id", fresh.ID, "removed", removed)
	}
	return removed, nil
}

// VerifyLedger checks that userID's balance equals its baseline plus the
// signed amounts of its transactions minus the fees it paid, and that its
// card balances add up to the same figure.
func (b *Bank) VerifyLedger(ctx context.Context, userID string) error {
	return b.store.View(ctx, func(snap *ledger.Snapshot) error {
		u := snap.UserByID(userID)
		if u == nil {
			return common.ErrUserNotFound
		}

		var txs []*models.Transaction
		for _, t := range snap.Transactions {
			if t.UserID == userID {
				txs = append(txs, t)
			}
		}
		if want := u.LedgerBaseline + netEffect(txs); want != u.Balance {
			return fmt.Errorf("%w: balance %d, log %d", common.ErrLedgerMismatch, u.Balance, want)
		}

		cards := snap.CardsOf(userID)
		if len(cards) == 0 {
			return nil
		}
		var onCards int64
		for _, c := range cards {
			onCards += c.Balance
		}
		if onCards != u.Balance {
			return fmt.Errorf("%w: balance %d, cards %d", common.ErrLedgerMismatch, u.Balance, onCards)
		}
		return nil
	})
}

func netEffect(txs []*models.Transaction) int64 {
	var sum int64
	for _, t := range txs {
		sum += t.Amount - t.Details.Fee
	}
	return sum
}
