package cli

import (
	"context"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/money"
)

// Register prompts for a name, email and password and opens an account.
// The new user is logged in on success.
func (a *App) Register(ctx context.Context) error {
	name, err := a.ask("Enter your name")
	if err != nil {
		return err
	}
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.bank.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	a.user = u
	a.printf("Welcome, %s! Your starting balance is %s\n", u.Name, money.Format(u.Balance))
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.bank.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.user = u
	a.printf("Hello, %s! Balance: %s\n", u.Name, money.Format(u.Balance))
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.bank.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.println("Logged out")
	return nil
}

// Balance prints the account summary.
func (a *App) Balance(ctx context.Context) error {
	u, err := a.bank.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.user = u

	a.printf("%s <%s>, %s tier\n", u.Name, u.Email, u.Tier)
	a.printf("Balance:      %s\n", money.Format(u.Balance))
	a.printf("Total earned: %s\n", money.Format(u.TotalEarned))
	a.printf("Clicks today: %d/%d (all time %d)\n", u.ClicksToday, a.bank.Policy().DailyClickLimit, u.Clicks)
	return nil
}

// Reset erases all local bank data after confirmation.
func (a *App) Reset(ctx context.Context) error {
	answer, err := a.ask("Erase ALL accounts, cards and history on this device? (yes/no)")
	if err != nil {
		return err
	}
	if answer != "yes" {
		a.println("Cancelled")
		return nil
	}

	if err := a.bank.Reset(ctx); err != nil {
		return err
	}
	a.user = nil
	a.println("All local data erased")
	return nil
}
