package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yurin-kami/packchann-client/internal/client/config"
	"github.com/yurin-kami/packchann-client/internal/client/gateway"
	"github.com/yurin-kami/packchann-client/internal/client/guard"
	"github.com/yurin-kami/packchann-client/internal/client/packs"
	"github.com/yurin-kami/packchann-client/internal/client/session"
	"github.com/yurin-kami/packchann-client/internal/client/storage"
	"github.com/yurin-kami/packchann-client/internal/common"
	"github.com/yurin-kami/packchann-client/internal/logging"
)

// App wires configuration, local storage, the API gateway, and the state
// services behind an interactive REPL.
type App struct {
	config  *config.Config
	log     logging.Logger
	store   storage.Store
	gw      gateway.Gateway
	session *session.Session
	packs   *packs.Service
	route   guard.Route
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}

	store, err := storage.OpenSQLite(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	gw := gateway.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, logger)
	sess := session.New(gw, store, logger)
	pk := packs.New(gw, logger)

	home, _ := guard.Lookup(guard.RouteHome)

	a := &App{
		config:  cfg,
		log:     logger,
		store:   store,
		gw:      gw,
		session: sess,
		packs:   pk,
		route:   home,
		reader:  bufio.NewReader(os.Stdin),
	}

	gw.OnUnauthorized(a.handleUnauthorized)

	return a, nil
}

// handleUnauthorized drops the local session and sends the user back to the
// login route. Fired by the gateway whenever the server answers 401.
func (a *App) handleUnauthorized() {
	a.session.Logout(context.Background())
	if login, ok := guard.Lookup(guard.RouteLogin); ok {
		a.route = login
	}
	printlnFn("Session expired, please log in again.")
}

// Run restores any persisted session, then blocks in the REPL until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error("error closing local store", "error", err)
		}
	}()

	if err := a.session.LoadFromStorage(ctx); err != nil {
		if !errors.Is(err, common.ErrNoStoredSession) {
			a.log.Warn("could not restore session", "error", err)
		}
	} else if u := a.session.User(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.UserName))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Ping checks whether the station API is reachable.
func (a *App) Ping(ctx context.Context) error {
	if err := a.gw.Ping(ctx); err != nil {
		printlnFn("Server unreachable:", err.Error())
		return err
	}
	printlnFn("Server is up.")
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.Snapshot().IsAdmin()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.UserName
		if u.IsAdmin() {
			s += " admin"
		}
	}
	if a.route.Name != "" {
		if s != "" {
			s += " "
		}
		s += "@" + a.route.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
