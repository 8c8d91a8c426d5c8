package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records which commands the REPL dispatched, in order.
type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Login(ctx context.Context) error          { return f.record("login") }
func (f *fakeExec) Register(ctx context.Context) error       { return f.record("register") }
func (f *fakeExec) Logout(ctx context.Context) error         { return f.record("logout") }
func (f *fakeExec) ForgotPassword(ctx context.Context) error { return f.record("forgot") }
func (f *fakeExec) Contact(ctx context.Context) error        { return f.record("contact") }

func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }
func (f *fakeExec) Search(ctx context.Context, term string) error {
	return f.record("search:" + term)
}
func (f *fakeExec) Sort(ctx context.Context, field string) error {
	return f.record("sort:" + field)
}
func (f *fakeExec) Category(ctx context.Context, arg string) error {
	return f.record("cat:" + arg)
}
func (f *fakeExec) Categories(ctx context.Context, query string) error {
	return f.record("categories:" + query)
}
func (f *fakeExec) Filters(ctx context.Context) error      { return f.record("filters") }
func (f *fakeExec) ClearFilters(ctx context.Context) error { return f.record("clearfilters") }
func (f *fakeExec) Page(ctx context.Context, arg string) error {
	return f.record("page:" + arg)
}
func (f *fakeExec) NextPage(ctx context.Context) error { return f.record("next") }
func (f *fakeExec) PrevPage(ctx context.Context) error { return f.record("prev") }
func (f *fakeExec) Show(ctx context.Context, arg string) error {
	return f.record("show:" + arg)
}
func (f *fakeExec) Stats(ctx context.Context) error { return f.record("stats") }

func (f *fakeExec) Profile(ctx context.Context) error        { return f.record("profile") }
func (f *fakeExec) SaveInfo(ctx context.Context) error       { return f.record("saveinfo") }
func (f *fakeExec) SaveCategories(ctx context.Context) error { return f.record("savecats") }

// captureOutput swaps printlnFn for the duration of the test and collects
// every printed line.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "guest" }, scanner)
	return *lines
}

func TestREPLDispatchesCommands(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "login\nregister\nforgot\ncontact\nexit\n")
	assert.Equal(t, []string{"login", "register", "forgot", "contact"}, f.calls)
}

func TestREPLDispatchesTenderCommandsWithArgs(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	script := strings.Join([]string{
		"l",
		"list",
		"search road works",
		"sort exp",
		"cat 5",
		"categories build",
		"filters",
		"clearfilters",
		"page 3",
		"next",
		"prev",
		"show 7",
		"stats",
		"profile",
		"saveinfo",
		"savecats",
		"logout",
		"quit",
	}, "\n") + "\n"
	runScript(t, f, script)

	assert.Equal(t, []string{
		"list", "list",
		"search:road works",
		"sort:exp",
		"cat:5",
		"categories:build",
		"filters", "clearfilters",
		"page:3", "next", "prev",
		"show:7", "stats",
		"profile", "saveinfo", "savecats",
		"logout",
	}, f.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	f := &fakeExec{}
	lines := runScript(t, f, "frobnicate\nexit\n")

	var found bool
	for _, l := range lines {
		if strings.Contains(l, "Unknown command") && strings.Contains(l, "frobnicate") {
			found = true
		}
	}
	assert.True(t, found, "expected an unknown-command message, got %v", lines)
	assert.Empty(t, f.calls)
}

func TestREPLSkipsBlankLines(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "\n   \nlogin\nexit\n")
	assert.Equal(t, []string{"login"}, f.calls)
}

func TestREPLHelpDependsOnLoginState(t *testing.T) {
	out := strings.Join(runScript(t, &fakeExec{}, "help\nexit\n"), "")
	assert.Contains(t, out, "login, register")
	assert.NotContains(t, out, "saveinfo")

	out = strings.Join(runScript(t, &fakeExec{loggedIn: true}, "help\nexit\n"), "")
	assert.Contains(t, out, "profile")
	assert.Contains(t, out, "logout")
}

func TestREPLExitsOnEOF(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "login\n") // no exit, scanner hits EOF
	assert.Equal(t, []string{"login"}, f.calls)
}

func TestREPLPromptShowsStatus(t *testing.T) {
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader("exit\n"))
	runREPL(context.Background(), &fakeExec{}, func() string { return "builder" }, scanner)

	assert.Contains(t, (*lines)[0], "utender builder> ")
}
