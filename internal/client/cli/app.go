package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/client/client"
	"github.com/dmitrijs2005/gophstore/internal/client/config"
	"github.com/dmitrijs2005/gophstore/internal/client/feed"
	"github.com/dmitrijs2005/gophstore/internal/client/gate"
	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/client/navigation"
	"github.com/dmitrijs2005/gophstore/internal/client/products"
	"github.com/dmitrijs2005/gophstore/internal/client/profile"
	"github.com/dmitrijs2005/gophstore/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophstore/internal/client/session"
	"github.com/dmitrijs2005/gophstore/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type sessionStore interface {
	Current() models.Session
	Subscribe(ctx context.Context) <-chan models.Session
	Restore(ctx context.Context) models.Session
	SignIn(ctx context.Context, email, password string) (models.Session, error)
	SignOut(ctx context.Context) error
	Register(ctx context.Context, r models.Registration) (string, error)
}

type productWriter interface {
	Submit(ctx context.Context, f *products.Form) (string, error)
	MarkSold(ctx context.Context, id string) error
}

type profileService interface {
	Load(ctx context.Context, s models.Session) profile.Result
	Save(ctx context.Context, name, degree string, gradYear int) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// deps are the collaborators App drives; tests substitute fakes.
type deps struct {
	sessions sessionStore
	profiles profileService
	writer   productWriter
	watcher  feed.Watcher
	pinger   pinger
}

type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	sessions sessionStore
	nav      *navigation.Navigator
	gate     *gate.Gate
	profiles profileService
	writer   productWriter
	watcher  feed.Watcher
	pinger   pinger
	closers  []func() error

	mu   sync.Mutex
	mode Mode
	area *mainArea
	form products.Form
}

// NewApp opens the local database and the server connection and wires the
// CLI together.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("local database: %w", err)
	}

	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(c, metadata.NewSQLiteRepository(db), log)
	a := newApp(cfg, log, bufio.NewReader(os.Stdin), os.Stdout, deps{
		sessions: store,
		profiles: profile.NewLoader(c, log),
		writer:   products.NewWriter(store, c, &http.Client{Timeout: 2 * time.Minute}),
		watcher:  c,
		pinger:   c,
	})
	a.closers = []func() error{c.Close, db.Close}
	return a, nil
}

func newApp(cfg *config.Config, log logging.Logger, r *bufio.Reader, w io.Writer, d deps) *App {
	nav := navigation.NewNavigator()
	return &App{
		config:   cfg,
		log:      log,
		reader:   r,
		out:      w,
		sessions: d.sessions,
		nav:      nav,
		gate:     gate.New(nav, cfg.SplashDelay),
		profiles: d.profiles,
		writer:   d.writer,
		watcher:  d.watcher,
		pinger:   d.pinger,
	}
}

// Run starts the background workers, resolves the session and blocks in
// the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer a.close()
	defer cancel()

	go a.runGate(ctx)
	go a.followRoutes(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to gophstore (type 'help' for commands)")
	a.sessions.Restore(ctx)
	a.awaitRoute(ctx, func(r navigation.Route) bool { return r != navigation.RouteSplash })

	runREPL(ctx, a, a.status, a.reader)
}

// runGate keeps the gate subscribed to sessions only while splash is up.
func (a *App) runGate(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.gate.Run(ctx, a.sessions.Subscribe(ctx))
}

func (a *App) close() {
	a.unmount()
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close", "error", err)
		}
	}
}

func (a *App) route() navigation.Route {
	return a.nav.Current()
}

// awaitRoute blocks until the current route satisfies ok or ctx is done.
func (a *App) awaitRoute(ctx context.Context, ok func(navigation.Route) bool) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for r := range a.nav.Subscribe(ctx) {
		if ok(r) {
			return true
		}
	}
	return false
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connection mode changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := a.pinger.Ping(pctx)
		cancel()
		if err != nil {
			a.setMode(ModeOffline)
		} else {
			a.setMode(ModeOnline)
		}
	}

	check()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) status() string {
	s := string(a.route())
	if u := a.sessions.Current(); u.IsAuthenticated {
		s += " " + u.Email
	}
	if m := a.getMode(); m != "" {
		s += " " + string(m)
	}
	return "(" + s + ")"
}
