package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophbank/internal/config"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/logging"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/dmitrijs2005/gophbank/internal/services"
	"github.com/dmitrijs2005/gophbank/internal/storage"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	config *config.Config
	db     *storage.Database
	bank   *services.Bank
	log    logging.Logger

	user   *models.User
	reader *bufio.Reader

	outMu sync.Mutex
	out   io.Writer
}

// NewApp opens the database named by c and wires the bank around it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := storage.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return newApp(c, db, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, db *storage.Database, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		db:     db,
		log:    logger,
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.bank = services.NewBank(ledger.NewStore(db.DB, db.KV), services.Options{
		Logger:            logger,
		SessionSecret:     []byte(c.SessionSecret),
		SessionTTL:        c.SessionTTL,
		AutoClickInterval: c.AutoClickInterval,
		HistoryLimit:      c.HistoryLimit,
		Notifier:          a.notify,
	})
	return a
}

// Run restores the previous session if possible and serves the REPL until
// the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to GophBank (type 'help' for commands)")
	if u, err := a.bank.Restore(ctx); err == nil {
		a.user = u
		a.println("Welcome back,", u.Name)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

// Close stops background work and releases the database.
func (a *App) Close() {
	_ = a.bank.Close()
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus(ctx context.Context) string {
	if a.user == nil {
		return ""
	}
	u, err := a.bank.CurrentUser(ctx)
	if err != nil {
		return fmt.Sprintf(" (%s)", a.user.Email)
	}
	return fmt.Sprintf(" (%s %s)", u.Email, money.Format(u.Balance))
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// notify prints notifications pushed by the bank, e.g. auto-clicker income.
func (a *App) notify(n models.Notification) {
	a.println(fmt.Sprintf("[%s] %s", n.Severity, n.Message))
}
