package cli

import (
	"context"

	"github.com/dmitrijs2005/gophbank/internal/services"
)

// History prints recent transactions, newest first.
func (a *App) History(ctx context.Context) error {
	txs, err := a.bank.History(ctx)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		a.println("No transactions yet")
		return nil
	}

	for _, t := range txs {
		v := services.NewTransactionView(t)
		line := v.CreatedAt.Local().Format("2006-01-02 15:04") + "  " + v.Amount + "  " + v.Description
		if v.Fee != "" {
			line += " (fee " + v.Fee + ")"
		}
		a.println(line)
	}
	return nil
}

// ClearHistory deletes the user's transaction history after confirmation.
func (a *App) ClearHistory(ctx context.Context) error {
	answer, err := a.ask("Clear your whole transaction history? (yes/no)")
	if err != nil {
		return err
	}
	if answer != "yes" && answer != "y" {
		a.println("Cancelled")
		return nil
	}

	n, err := a.bank.ClearHistory(ctx)
	if err != nil {
		return err
	}
	a.printf("Removed %d transactions\n", n)
	return nil
}
