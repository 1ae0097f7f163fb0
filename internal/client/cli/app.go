package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/schoolplatform/internal/client/auth"
	"github.com/dmitrijs2005/schoolplatform/internal/client/config"
	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/client/session"
	"github.com/dmitrijs2005/schoolplatform/internal/client/store"
	"github.com/dmitrijs2005/schoolplatform/internal/logging"

	gs "github.com/dmitrijs2005/schoolplatform/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager *session.Manager
	reader  *bufio.Reader
	out     io.Writer
	closeFn func() error
}

// NewApp builds the account service selected by c and restores the stored
// session. Logs go to stderr.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewTintLogger(os.Stderr, level)

	svc, closeFn, err := newAuthService(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	return newApp(ctx, c, svc, closeFn, logger, os.Stdin, os.Stdout), nil
}

func newApp(ctx context.Context, c *config.Config, svc services.AuthService, closeFn func() error,
	logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		logger:  logger,
		manager: session.NewManager(ctx, svc, logger.With("module", "session")),
		reader:  bufio.NewReader(in),
		out:     out,
		closeFn: closeFn,
	}
}

// newAuthService returns a client of the configured daemon, or a service over
// the local store.
func newAuthService(ctx context.Context, c *config.Config, logger logging.Logger) (services.AuthService, func() error, error) {
	if c.IsRemote() {
		client, err := gs.Dial(c.ServerEndpointAddr, c.RequestTimeout)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug(ctx, "using account daemon", "address", c.ServerEndpointAddr)
		return client, client.Close, nil
	}

	codec, err := auth.NewCodec(c.SessionSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("session codec init error: %w", err)
	}

	st, err := store.Open(ctx, c.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing store: %w", err)
	}
	logger.Debug(ctx, "using local store", "driver", st.Driver())

	svc := services.NewAuthService(st.Repository(),
		services.WithSessionCodec(codec),
		services.WithLogger(logger.With("module", "auth_service")),
	)
	return svc, st.Close, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	printlnFn("Welcome to the School Platform CLI (type 'help' for commands)")
	if st := a.manager.State(); st.IsAuthenticated() {
		printlnFn(fmt.Sprintf("Signed in as %s <%s>", st.User.Name, st.User.Email))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	if a.closeFn == nil {
		return
	}
	if err := a.closeFn(); err != nil {
		a.logger.Error(ctx, "failed to close account service", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.manager.State().IsAuthenticated()
}

func (a *App) getStatus() string {
	st := a.manager.State()
	if !st.IsAuthenticated() {
		return ""
	}
	return fmt.Sprintf("(%s)", st.User.Name)
}
