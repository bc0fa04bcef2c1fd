// Package cli implements the interactive REPL for the library client.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/libracli/internal/client/api"
	"github.com/dmitrijs2005/libracli/internal/client/config"
	"github.com/dmitrijs2005/libracli/internal/client/services"
	"github.com/dmitrijs2005/libracli/internal/client/session"
	"github.com/dmitrijs2005/libracli/internal/client/tokenstore"
	"github.com/dmitrijs2005/libracli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session, the services and the command loop together.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session
	books   services.BookService
	borrows services.BorrowService
	fines   services.FineService
	admin   services.AdminService
	account services.AccountService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the full client: local database, token store, API client,
// session and services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := tokenstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := tokenstore.NewSQLiteStore(db)
	client := api.NewHTTPClient(cfg.ServerBaseURL, store, cfg.RequestTimeout, log)

	return &App{
		config:  cfg,
		log:     log,
		session: session.New(store, client, log),
		books:   services.NewBookService(client),
		borrows: services.NewBorrowService(client),
		fines:   services.NewFineService(client),
		admin:   services.NewAdminService(client),
		account: services.NewAccountService(client),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run bootstraps the session from the stored tokens and enters the command
// loop.
func (a *App) Run(ctx context.Context) {
	a.session.Bootstrap(ctx)
	a.Root(ctx)
}
