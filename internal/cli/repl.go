package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Balance(ctx context.Context) error
	Click(ctx context.Context, args []string) error
	Upgrades(ctx context.Context) error
	Buy(ctx context.Context, args []string) error
	Issue(ctx context.Context, args []string) error
	Cards(ctx context.Context) error
	Transfer(ctx context.Context) error
	Fee(ctx context.Context, args []string) error
	History(ctx context.Context) error
	ClearHistory(ctx context.Context) error
	Loan(ctx context.Context) error
	Reset(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, loan, fee <amount>, reset, exit"
	helpMember = "Available commands: balance, click [n], upgrades, buy <upgrade>, issue [debit|premium], " +
		"cards, transfer, fee <amount>, history, clear, loan, logout, reset, exit"
)

// runREPL starts a simple read–eval–print loop for the GophBank CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors returned by handlers are printed with
// a severity tag and the loop continues. The loop exits on EOF or when the
// user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bank%s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "b", "balance":
			err = a.Balance(ctx)

		case "c", "click":
			err = a.Click(ctx, args)

		case "upgrades":
			err = a.Upgrades(ctx)

		case "buy":
			err = a.Buy(ctx, args)

		case "issue":
			err = a.Issue(ctx, args)

		case "cards":
			err = a.Cards(ctx)

		case "transfer", "send":
			err = a.Transfer(ctx)

		case "fee":
			err = a.Fee(ctx, args)

		case "h", "history":
			err = a.History(ctx)

		case "clear":
			err = a.ClearHistory(ctx)

		case "loan":
			err = a.Loan(ctx)

		case "reset":
			err = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(formatError(err))
		}
	}
}
