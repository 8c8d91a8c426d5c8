// Package cli is the interactive terminal application: a REPL over the
// session coordinator and the tender-list browser.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/utender/utender-cli/internal/api"
	"github.com/utender/utender-cli/internal/config"
	"github.com/utender/utender-cli/internal/filex"
	"github.com/utender/utender-cli/internal/logging"
	"github.com/utender/utender-cli/internal/session"
	"github.com/utender/utender-cli/internal/storage"
	"github.com/utender/utender-cli/internal/tenders"
)

// App wires the client services together and carries the REPL state.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	session *session.Service
	browser *tenders.Browser
	dir     *tenders.Directory
	client  api.Client

	reader *bufio.Reader
	out    io.Writer

	// results receives browser updates; commands drain it before a
	// mutation and then wait on it for the outcome.
	results chan tenders.Result
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	statePath, err := filex.EnsureParentDir(cfg.StatePath)
	if err != nil {
		log.Error(ctx, "error preparing state directory", "err", err)
		return nil, err
	}

	db, err := storage.Open(ctx, statePath)
	if err != nil {
		log.Error(ctx, "error opening state database", "err", err)
		return nil, err
	}

	client := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	store := storage.NewStore(db)

	sess := session.NewService(client, store, log)
	browser := tenders.NewBrowser(client, log, tenders.Options{
		Limit:          cfg.PageLimit,
		SearchDebounce: cfg.SearchDebounce,
		RequestTimeout: cfg.RequestTimeout,
	})

	app := &App{
		cfg:     cfg,
		log:     log,
		session: sess,
		browser: browser,
		dir:     tenders.NewDirectory(client),
		client:  client,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		results: make(chan tenders.Result, 8),
	}
	browser.Subscribe(func(r tenders.Result) {
		select {
		case app.results <- r:
		default:
		}
	})
	return app, nil
}

// Run rehydrates the session and enters the REPL. It returns when the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.browser.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session bootstrap failed", "err", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}

// status renders the prompt suffix: the member name when logged in.
func (a *App) status() string {
	s := a.session.Snapshot()
	if s.Authenticated {
		return "(" + s.User.DisplayName() + ")"
	}
	return ""
}
