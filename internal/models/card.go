package models

import "time"

// CardType classifies an issued card.
type CardType string

const (
	CardTypeDebit   CardType = "debit"
	CardTypePremium CardType = "premium"
)

// Valid reports whether t is a known card type.
func (t CardType) Valid() bool {
	return t == CardTypeDebit || t == CardTypePremium
}

// Card is a payment card owned by a user. Number is stored formatted as
// four space-separated groups of four digits and is unique across all users.
// Balance mirrors the deltas routed through this card.
type Card struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Number    string    `json:"number"`
	Type      CardType  `json:"type"`
	Balance   int64     `json:"balance"`
	Holder    string    `json:"holder"`
	Expiry    string    `json:"expiry"`
	CVV       string    `json:"cvv"`
	Active    bool      `json:"active"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
