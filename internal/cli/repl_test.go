package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   map[string]error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Balance(ctx context.Context) error  { return f.record("balance", nil) }
func (f *fakeExec) Upgrades(ctx context.Context) error { return f.record("upgrades", nil) }
func (f *fakeExec) Cards(ctx context.Context) error    { return f.record("cards", nil) }
func (f *fakeExec) Transfer(ctx context.Context) error { return f.record("transfer", nil) }
func (f *fakeExec) History(ctx context.Context) error  { return f.record("history", nil) }
func (f *fakeExec) ClearHistory(ctx context.Context) error {
	return f.record("clear", nil)
}
func (f *fakeExec) Loan(ctx context.Context) error { return f.record("loan", nil) }
func (f *fakeExec) Reset(ctx context.Context) error {
	f.loggedIn = false
	return f.record("reset", nil)
}
func (f *fakeExec) Click(ctx context.Context, args []string) error {
	return f.record("click", args)
}
func (f *fakeExec) Buy(ctx context.Context, args []string) error   { return f.record("buy", args) }
func (f *fakeExec) Issue(ctx context.Context, args []string) error { return f.record("issue", args) }
func (f *fakeExec) Fee(ctx context.Context, args []string) error   { return f.record("fee", args) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := rdr(strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"click 5",
		"c",
		"buy auto-clicker",
		"issue premium",
		"cards",
		"send",
		"fee 500",
		"h",
		"clear",
		"loan",
		"upgrades",
		"b",
		"logout",
		"foobar",
		"reset",
		"exit",
		"balance",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return " (status)" }, input)

	assert.Equal(t, []string{
		"login", "click", "click", "buy", "issue", "cards", "transfer", "fee",
		"history", "clear", "loan", "upgrades", "balance", "logout", "reset",
	}, exec.calls)
	assert.Equal(t, []string{"5"}, exec.args[1])
	assert.Equal(t, []string{"auto-clicker"}, exec.args[3])

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, helpGuest)
	assert.Contains(t, joined, helpMember)
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "bank (status)> ")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: map[string]error{
		"click":    common.ErrDailyLimitReached,
		"transfer": common.ErrRecipientNotFound,
	}}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("click\ntransfer\n"))

	require.Len(t, exec.calls, 2)
	assert.Contains(t, *out, "[warning] daily click limit reached")
	assert.Contains(t, *out, "[error] recipient not found")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login"))
	assert.Equal(t, []string{"login"}, exec.calls)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "[warning] insufficient funds", formatError(common.ErrInsufficientFunds))
	assert.Equal(t, "[error] unauthorized", formatError(common.ErrUnauthorized))
	assert.Equal(t, "[info] usage: fee <amount>", formatError(usage("fee <amount>")))
	assert.Equal(t, "[error] boom", formatError(fmt.Errorf("boom")))
}
