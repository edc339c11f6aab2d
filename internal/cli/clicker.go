package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
)

const maxClicksPerCommand = 1000

// Click clicks once, or n times with "click n". It stops at the first
// failure but still reports what was earned before it.
func (a *App) Click(ctx context.Context, args []string) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 || v > maxClicksPerCommand {
			return usage("click [1-%d]", maxClicksPerCommand)
		}
		n = v
	}

	var (
		earned int64
		done   int
		last   int64
	)
	for ; done < n; done++ {
		res, err := a.bank.Click(ctx)
		if err != nil {
			if done > 0 {
				a.printf("Clicked %d times, earned %s\n", done, money.Format(earned))
			}
			return err
		}
		earned += res.Earned
		last = res.Balance
	}

	a.printf("Clicked %d times, earned %s. Balance: %s\n", done, money.Format(earned), money.Format(last))
	return nil
}

// Upgrades lists upgrade levels and prices.
func (a *App) Upgrades(ctx context.Context) error {
	views, err := a.bank.Upgrades(ctx)
	if err != nil {
		return err
	}

	for _, v := range views {
		price := "maxed"
		if !v.Maxed {
			price = money.Format(v.NextCost)
		}
		a.printf("%-13s lvl %2d/%-2d %3d%%  effect %-14s next %s\n",
			v.Type, v.Level, v.MaxLevel, v.Progress, v.Effect, price)
	}
	return nil
}

// Buy purchases the next level of the named upgrade.
func (a *App) Buy(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("buy <auto-clicker|double-click|triple-click|time-warp>")
	}

	res, err := a.bank.BuyUpgrade(ctx, models.UpgradeType(args[0]))
	if err != nil {
		return err
	}

	a.printf("%s is now level %d (paid %s). Balance: %s\n",
		res.Type, res.Level, money.Format(res.Cost), money.Format(res.Balance))
	if res.Type == models.UpgradeAutoClicker {
		a.println("Auto-clicker is running")
	}
	return nil
}
