// Package models defines the bank's persisted records and the read views
// handed to the presentation layer.
package models

import (
	"maps"
	"time"
)

// Tier is a display label for the account level.
type Tier string

const (
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
)

// User is an account holder. Balance is the authoritative spendable amount;
// it moves in lock-step with the user's slice of the transaction log.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Name         string `json:"name"`

	Balance     int64 `json:"balance"`
	TotalEarned int64 `json:"total_earned"`

	// LedgerBaseline is the part of Balance not explained by the current
	// transaction log; it grows when the user clears their history.
	LedgerBaseline int64 `json:"ledger_baseline"`

	Clicks        int64  `json:"clicks"`
	ClicksToday   int64  `json:"clicks_today"`
	LastClickDate string `json:"last_click_date"`

	Upgrades map[UpgradeType]int `json:"upgrades"`

	Tier        Tier      `json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// Level returns the user's level for upgrade t (0 when never bought).
func (u *User) Level(t UpgradeType) int {
	if u.Upgrades == nil {
		return 0
	}
	return u.Upgrades[t]
}

// SetLevel records level for upgrade t.
func (u *User) SetLevel(t UpgradeType, level int) {
	if u.Upgrades == nil {
		u.Upgrades = make(map[UpgradeType]int)
	}
	u.Upgrades[t] = level
}

// Clone returns a deep copy safe to hand outside the engine.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Upgrades = maps.Clone(u.Upgrades)
	return &cp
}
