package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Contact(ctx context.Context) error

	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Sort(ctx context.Context, field string) error
	Category(ctx context.Context, arg string) error
	Categories(ctx context.Context, query string) error
	Filters(ctx context.Context) error
	ClearFilters(ctx context.Context) error
	Page(ctx context.Context, arg string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Stats(ctx context.Context) error

	Profile(ctx context.Context) error
	SaveInfo(ctx context.Context) error
	SaveCategories(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command and
// dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or "exit"/"quit".
//
// Errors returned by handlers are ignored here; handlers print their own
// messages. That keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("utender %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search <text>, sort pub|exp, cat [id], categories [text],")
				printlnFn("  filters, clearfilters, page <n>, next, prev, show <id>, stats,")
				printlnFn("  profile, saveinfo, savecats, contact, logout, exit")
			} else {
				printlnFn("Available commands: login, register, forgot, contact, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "sort":
			_ = a.Sort(ctx, rest)

		case "cat":
			_ = a.Category(ctx, rest)

		case "categories":
			_ = a.Categories(ctx, rest)

		case "filters":
			_ = a.Filters(ctx)

		case "clearfilters":
			_ = a.ClearFilters(ctx)

		case "page":
			_ = a.Page(ctx, rest)

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "show":
			_ = a.Show(ctx, rest)

		case "stats":
			_ = a.Stats(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "saveinfo":
			_ = a.SaveInfo(ctx)

		case "savecats":
			_ = a.SaveCategories(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
