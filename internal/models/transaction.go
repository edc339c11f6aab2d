package models

import "time"

// TransactionType enumerates balance-affecting events.
type TransactionType string

const (
	TransactionBonus       TransactionType = "bonus"
	TransactionClicker     TransactionType = "clicker"
	TransactionAutoClicker TransactionType = "auto-clicker"
	TransactionUpgrade     TransactionType = "upgrade"
	TransactionTransferOut TransactionType = "transfer_out"
	TransactionTransferIn  TransactionType = "transfer_in"
	TransactionCardIssue   TransactionType = "card_issue"
)

// StatusCompleted is the only status a transaction can have.
const StatusCompleted = "completed"

// TransactionDetails carries optional counterparty data.
type TransactionDetails struct {
	CardNumber   string `json:"card_number,omitempty"`
	Counterparty string `json:"counterparty,omitempty"`
	Fee          int64  `json:"fee,omitempty"`
}

// Transaction is an immutable log record. Amount is signed: positive
// credits, negative debits. Both legs of a transfer share CorrelationID.
type Transaction struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	Type          TransactionType    `json:"type"`
	Amount        int64              `json:"amount"`
	Description   string             `json:"description"`
	Status        string             `json:"status"`
	Details       TransactionDetails `json:"details"`
	CorrelationID string             `json:"correlation_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}
