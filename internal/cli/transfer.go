package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/dmitrijs2005/gophbank/internal/services"
	"github.com/shopspring/decimal"
)

func parseAmount(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), " ", ""), 10, 64)
	if err != nil {
		return 0, common.ErrInvalidAmount
	}
	return v, nil
}

// Transfer prompts for a recipient and amount and sends money.
func (a *App) Transfer(ctx context.Context) error {
	if a.user == nil {
		return common.ErrUnauthorized
	}

	recipient, err := a.ask("Recipient (email or card number)")
	if err != nil {
		return err
	}
	raw, err := a.ask("Amount")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}

	rc, err := a.bank.Transfer(ctx, services.TransferRequest{
		FromUserID: a.user.ID,
		Recipient:  recipient,
		Amount:     amount,
	})
	if err != nil {
		return err
	}

	a.printf("Sent %s to %s (%s), fee %s. Balance: %s\n",
		money.Format(rc.Amount), rc.RecipientName, rc.RecipientCard, money.Format(rc.Fee), money.Format(rc.Balance))
	return nil
}

// Fee quotes the transfer fee for an amount.
func (a *App) Fee(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("fee <amount>")
	}
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	fee, err := a.bank.QuoteFee(amount)
	if err != nil {
		return err
	}
	a.printf("Fee for %s: %s (total %s)\n", money.Format(amount), money.Format(fee), money.Format(amount+fee))
	return nil
}

// Loan prompts for loan terms and prints the annuity plan.
func (a *App) Loan(_ context.Context) error {
	rawAmount, err := a.ask("Loan amount")
	if err != nil {
		return err
	}
	rawTerm, err := a.ask("Term (months)")
	if err != nil {
		return err
	}
	rawRate, err := a.ask("Annual rate (%)")
	if err != nil {
		return err
	}

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return common.ErrInvalidLoanTerms
	}
	months, err := strconv.Atoi(strings.TrimSpace(rawTerm))
	if err != nil {
		return common.ErrInvalidLoanTerms
	}
	rate, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rawRate), ",", "."))
	if err != nil {
		return common.ErrInvalidLoanTerms
	}

	q, err := services.CalculateLoan(amount, months, rate)
	if err != nil {
		return err
	}

	a.printf("Monthly payment: %s\n", money.Format(q.Monthly))
	a.printf("Total payment:   %s\n", money.Format(q.Total))
	a.printf("Overpayment:     %s\n", money.Format(q.Overpayment))
	return nil
}
