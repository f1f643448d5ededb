package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
	"github.com/dmitrijs2005/gophchat/internal/client/services"
	"github.com/dmitrijs2005/gophchat/internal/client/session"
	"github.com/dmitrijs2005/gophchat/internal/client/state"
	"github.com/dmitrijs2005/gophchat/internal/client/storage"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// selectionStore remembers the selected channel between runs.
type selectionStore interface {
	SelectedChannel(ctx context.Context) (int64, bool, error)
	SaveSelectedChannel(ctx context.Context, id int64, ok bool) error
}

type App struct {
	config   *config.Config
	log      logging.Logger
	users    services.UserService
	channels services.ChannelService
	state    *state.Store
	session  session.Provider

	// selection may be nil, the selection is then not persisted.
	selection selectionStore

	reader   *bufio.Reader
	out      io.Writer
	loggedIn bool
	userName string

	db         *sql.DB
	httpClient *client.HTTPClient
}

// NewApp wires the application from cfg: logger, session database, HTTP
// client and services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	sess := session.NewPersistentStore(db)

	httpClient := client.NewHTTPClient(cfg.APIBaseURL, client.Options{
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            log,
	})

	st := state.NewStore()

	return &App{
		config:     cfg,
		log:        log,
		users:      services.NewUserService(httpClient, sess, st, log),
		channels:   services.NewChannelService(httpClient, sess, st, log),
		state:      st,
		session:    sess,
		selection:  sess,
		reader:     bufio.NewReader(os.Stdin),
		out:        &syncWriter{w: os.Stdout},
		db:         db,
		httpClient: httpClient,
	}, nil
}

// Run restores the previous session, starts the state watchers and blocks in
// the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restoreSession(ctx)

	ctx, cancel := context.WithCancel(ctx)
	watchers := a.startWatchers(ctx)
	defer func() {
		cancel()
		for _, done := range watchers {
			<-done
		}
	}()

	printlnFn("Welcome to gophchat CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.log)
}

// Close releases the database and idle connections. Safe on a partially
// built App.
func (a *App) Close() {
	if a.httpClient != nil {
		a.httpClient.CloseIdleConnections()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "closing session db", "error", err)
		}
	}
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) restoreSession(ctx context.Context) {
	if _, err := a.session.Token(ctx); err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			a.log.Warn(ctx, "cannot read stored session", "error", err)
		}
		return
	}
	a.loggedIn = true
	if name, err := a.users.CurrentUser(ctx); err == nil {
		a.userName = name
	}

	if a.selection != nil {
		id, ok, err := a.selection.SelectedChannel(ctx)
		if err != nil {
			a.log.Warn(ctx, "cannot read stored selection", "error", err)
		} else if ok {
			a.state.SelectChannel(id)
		}
	}

	if _, err := a.channels.RefreshChannels(ctx); err != nil {
		a.log.Warn(ctx, "cannot load channels", "error", err)
	}
}

// status is shown in the prompt: "alice #12", "alice", or empty.
func (a *App) status() string {
	s := a.userName
	if a.loggedIn && s == "" {
		s = "logged in"
	}
	if id, ok := a.state.SelectedChannelID(); ok {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("#%d", id)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// syncWriter serialises writes from the REPL and the watcher goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
