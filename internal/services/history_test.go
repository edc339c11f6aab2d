package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_NewestFirstAndCapped(t *testing.T) {
	e := newEnv(t, func(o *Options) { o.HistoryLimit = 3 })
	ctx := context.Background()
	e.register(t, "Alice", "alice@example.com")

	for i := 0; i < 4; i++ {
		_, err := e.bank.Click(ctx)
		require.NoError(t, err)
	}
	_, err := e.bank.IssueCard(ctx, models.CardTypeDebit)
	require.NoError(t, err)

	h, err := e.bank.History(ctx)
	require.NoError(t, err)
	require.Len(t, h, 3)
	assert.Equal(t, models.TransactionCardIssue, h[0].Type)
	assert.Equal(t, models.TransactionClicker, h[1].Type)
}

func TestHistory_Unauthorized(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.bank.History(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	_, err = e.bank.ClearHistory(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestClearHistory_KeepsLedgerConsistent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice, bob := twoUsers(t, e)

	_, err := e.bank.Click(ctx)
	require.NoError(t, err)
	_, err = e.bank.Transfer(ctx, TransferRequest{FromUserID: alice.ID, Recipient: "bob@example.com", Amount: 300})
	require.NoError(t, err)

	n, err := e.bank.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	h, err := e.bank.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, h)

	stored := e.user(t, alice.ID)
	assert.Equal(t, int64(1000+1-300-10), stored.Balance)
	assert.Equal(t, stored.Balance, stored.LedgerBaseline)
	assert.Len(t, e.transactions(t, bob.ID), 2, "other users keep their log")
	e.requireLedger(t, alice.ID, bob.ID)

	// Clearing an empty log is a no-op.
	n, err = e.bank.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = e.bank.Click(ctx)
	require.NoError(t, err)
	e.requireLedger(t, alice.ID)
}

func TestVerifyLedger_DetectsDivergence(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "Mal", "mal@example.com")

	e.mutateUser(t, u.ID, func(u *models.User) { u.Balance += 5 })
	err := e.bank.VerifyLedger(ctx, u.ID)
	require.ErrorIs(t, err, common.ErrLedgerMismatch)
	assert.Equal(t, common.KindInternal, common.KindOf(err))

	require.ErrorIs(t, e.bank.VerifyLedger(ctx, "usr-missing"), common.ErrUserNotFound)
}
