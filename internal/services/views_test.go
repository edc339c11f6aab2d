package services

import (
	"testing"

	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewTransactionView(t *testing.T) {
	in := NewTransactionView(models.Transaction{ID: "txn-1", Type: models.TransactionTransferIn, Amount: 500})
	assert.Equal(t, "+", in.Amount[:1])
	assert.Contains(t, in.Amount, "500")
	assert.Empty(t, in.Fee)

	out := NewTransactionView(models.Transaction{
		Type:    models.TransactionTransferOut,
		Amount:  -500,
		Details: models.TransactionDetails{Fee: 10, CardNumber: "1111 2222 3333 4444"},
	})
	assert.Equal(t, "-", out.Amount[:1])
	assert.Contains(t, out.Fee, "10")
	assert.Equal(t, "1111 2222 3333 4444", out.CardNumber)
}

func TestNewCardView(t *testing.T) {
	v := NewCardView(models.Card{Number: "1111 2222 3333 4444", Type: models.CardTypePremium, Balance: 42, IsDefault: true})
	assert.Equal(t, models.CardTypePremium, v.Type)
	assert.Contains(t, v.Balance, "42")
	assert.True(t, v.IsDefault)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, int64(1000), p.StartingBonus)
	assert.Equal(t, int64(1000), p.DailyClickLimit)
	assert.Equal(t, int64(10), p.Fee.Fee(500))
	assert.Len(t, p.Upgrades, len(models.UpgradeTypes))

	u := &models.User{}
	assert.Zero(t, p.AutoRate(u))
	u.SetLevel(models.UpgradeAutoClicker, 4)
	assert.Equal(t, int64(4), p.AutoRate(u))
}
