package models

import "time"

// Severity of a notification shown by the presentation layer.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is pushed to the presentation layer after state changes that
// happen outside a direct command, such as auto-clicker ticks.
type Notification struct {
	Message  string
	Severity Severity
}

// CardView is a card prepared for display.
type CardView struct {
	Number    string
	Type      CardType
	Holder    string
	Expiry    string
	Balance   string
	IsDefault bool
}

// TransactionView is a history row prepared for display.
type TransactionView struct {
	ID          string
	Type        TransactionType
	Amount      string
	Description string
	Fee         string
	CardNumber  string
	CreatedAt   time.Time
}

// UpgradeView describes an upgrade's progress and price.
type UpgradeView struct {
	Type     UpgradeType
	Level    int
	MaxLevel int
	NextCost int64
	Effect   string
	Progress int
	Maxed    bool
}
