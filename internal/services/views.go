package services

import (
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
)

// NewCardView prepares c for display.
func NewCardView(c models.Card) models.CardView {
	return models.CardView{
		Number:    c.Number,
		Type:      c.Type,
		Holder:    c.Holder,
		Expiry:    c.Expiry,
		Balance:   money.Format(c.Balance),
		IsDefault: c.IsDefault,
	}
}

// NewTransactionView prepares t for display. Credits carry a leading plus.
func NewTransactionView(t models.Transaction) models.TransactionView {
	amount := money.Format(t.Amount)
	if t.Amount > 0 {
		amount = "+" + amount
	}
	v := models.TransactionView{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      amount,
		Description: t.Description,
		CardNumber:  t.Details.CardNumber,
		CreatedAt:   t.CreatedAt,
	}
	if t.Details.Fee > 0 {
		v.Fee = money.Format(t.Details.Fee)
	}
	return v
}
