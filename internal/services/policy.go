package services

import (
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/shopspring/decimal"
)

// UpgradeSpec is the price and effect table entry for one upgrade type.
// For the auto-clicker PerLevel is units credited per tick; for the other
// upgrades it is the multiplier bonus added per level.
type UpgradeSpec struct {
	Title    string
	BaseCost int64
	MaxLevel int
	PerLevel float64
}

// Cost returns the price of going from level to level+1: BaseCost × 2^level.
func (s UpgradeSpec) Cost(level int) int64 {
	return s.BaseCost << uint(level)
}

// Multiplier returns 1 + PerLevel × level.
func (s UpgradeSpec) Multiplier(level int) float64 {
	return 1 + s.PerLevel*float64(level)
}

// Policy holds every tunable number of the bank economy.
type Policy struct {
	StartingBonus     int64
	Fee               money.FeePolicy
	DailyClickLimit   int64
	BaseClickEarning  int64
	CardValidityYears int
	Upgrades          map[models.UpgradeType]UpgradeSpec
}

// DefaultPolicy returns the production economy.
func DefaultPolicy() Policy {
	return Policy{
		StartingBonus: 1000,
		Fee: money.FeePolicy{
			Rate: decimal.RequireFromString("0.015"),
			Min:  10,
			Max:  1000,
		},
		DailyClickLimit:   1000,
		BaseClickEarning:  1,
		CardValidityYears: 5,
		Upgrades: map[models.UpgradeType]UpgradeSpec{
			models.UpgradeAutoClicker: {Title: "Auto-clicker", BaseCost: 1000, MaxLevel: 10, PerLevel: 1},
			models.UpgradeDoubleClick: {Title: "Double click", BaseCost: 500, MaxLevel: 5, PerLevel: 1},
			models.UpgradeTripleClick: {Title: "Triple click", BaseCost: 2500, MaxLevel: 3, PerLevel: 2},
			models.UpgradeTimeWarp:    {Title: "Time warp", BaseCost: 10000, MaxLevel: 3, PerLevel: 0.5},
		},
	}
}

// ClickEarning returns what one manual click earns for u.
func (p Policy) ClickEarning(u *models.User) int64 {
	factor := 1.0
	for _, t := range []models.UpgradeType{models.UpgradeDoubleClick, models.UpgradeTripleClick, models.UpgradeTimeWarp} {
		if spec, ok := p.Upgrades[t]; ok {
			factor *= spec.Multiplier(u.Level(t))
		}
	}
	return money.Scale(p.BaseClickEarning, factor)
}

// AutoRate returns the units credited per auto-clicker tick for u.
func (p Policy) AutoRate(u *models.User) int64 {
	spec, ok := p.Upgrades[models.UpgradeAutoClicker]
	if !ok {
		return 0
	}
	return money.Scale(int64(u.Level(models.UpgradeAutoClicker)), spec.PerLevel)
}
