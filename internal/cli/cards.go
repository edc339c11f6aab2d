package cli

import (
	"context"

	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/services"
)

// Issue issues a new card; the type defaults to debit.
func (a *App) Issue(ctx context.Context, args []string) error {
	t := models.CardTypeDebit
	if len(args) > 0 {
		t = models.CardType(args[0])
	}

	c, err := a.bank.IssueCard(ctx, t)
	if err != nil {
		return err
	}

	a.printf("Issued %s card %s (exp %s, cvv %s)\n", c.Type, c.Number, c.Expiry, c.CVV)
	return nil
}

// Cards lists the user's cards.
func (a *App) Cards(ctx context.Context) error {
	cards, err := a.bank.Cards(ctx)
	if err != nil {
		return err
	}

	for _, c := range cards {
		v := services.NewCardView(c)
		mark := " "
		if v.IsDefault {
			mark = "*"
		}
		a.printf("%s %s  %-7s  %s  %s  %s\n", mark, v.Number, v.Type, v.Expiry, v.Holder, v.Balance)
	}
	return nil
}
