package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/notify"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/client/store"
	"github.com/dmitrijs2005/gophauth/internal/client/validator"
	"github.com/dmitrijs2005/gophauth/internal/clock"
	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// App is the interactive client: one App per process, one session per App.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	term    *Terminal
	notes   *notify.Notifier
	session *session.Controller
	clock   clock.Clock
	reader  *bufio.Reader
}

// deps are the collaborators NewApp builds from configuration; tests
// supply their own.
type deps struct {
	api   client.Client
	store store.CredentialStore
	clock clock.Clock
	in    io.Reader
	out   io.Writer
}

// NewApp opens the session store selected by c and connects the client to
// the configured API. For a durable store, c.DataDir is created if needed
// and replaced by its absolute path.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	api, err := client.NewHTTPClient(c.ServerBaseURL, &http.Client{}, log)
	if err != nil {
		return nil, err
	}

	d := deps{api: api, clock: clock.Real(), in: os.Stdin, out: os.Stdout}

	var db *sql.DB
	if c.InMemory {
		d.store = store.NewMemoryStore()
	} else {
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
		c.DataDir = dir
		db, err = store.OpenSQLite(ctx, c.DatabasePath())
		if err != nil {
			return nil, err
		}
		d.store = store.NewSQLiteStore(db, log)
	}

	app := newApp(c, log, d)
	app.db = db
	return app, nil
}

func newApp(c *config.Config, log logging.Logger, d deps) *App {
	term := NewTerminal(d.out)
	notes := notify.New(d.clock, term)
	validator.New(term).Bind(term)

	return &App{
		config:  c,
		log:     log,
		term:    term,
		notes:   notes,
		session: session.NewController(d.api, d.store, term, notes, log),
		clock:   d.clock,
		reader:  bufio.NewReader(d.in),
	}
}

// Run starts the session and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.term.Println(titleStyle.Render("gophauth") + hintStyle.Render(" - type 'help' for commands"))
	a.session.Start(ctx)
	runREPL(ctx, a, a.prompt, a.reader)
}

// Close releases the session database.
func (a *App) Close() {
	a.notes.Close()
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "close session database", "error", err)
	}
	a.db = nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.Authenticated
}

func (a *App) prompt() string {
	s := a.session.Snapshot()
	if s.User != nil {
		return fmt.Sprintf("(%s) %s", s.User.Username, s.View)
	}
	return s.View.String()
}
