// Package server wires the storefront backend together: database and
// migrations, business services, change propagation and the gRPC and HTTP
// endpoints, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/logging"
	"github.com/dmitrijs2005/gophstore/internal/server/config"
	"github.com/dmitrijs2005/gophstore/internal/server/feed"
	"github.com/dmitrijs2005/gophstore/internal/server/httpapi"
	"github.com/dmitrijs2005/gophstore/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophstore/internal/server/services"

	gs "github.com/dmitrijs2005/gophstore/internal/server/grpc"
)

const tokenPurgeInterval = time.Hour

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	hub      *feed.Hub
	users    *services.UserService
	profiles *services.ProfileService
	products *services.ProductService
	images   *services.ImageService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hub := feed.NewHub()

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		hub:      hub,
		users:    services.NewUserService(db, rm, c),
		profiles: services.NewProfileService(db, rm),
		products: services.NewProductService(db, rm, hub),
		images:   services.NewImageService(c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, gs.Services{
		Users:    app.users,
		Profiles: app.profiles,
		Products: app.products,
		Images:   app.images,
	}, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.products, app.db, app.logger, app.config.SecretKey)
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, h, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) purgeExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.users.PurgeExpiredTokens(ctx)
			if err != nil {
				app.logger.Warn(ctx, "refresh token purge failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "purged expired refresh tokens", "count", n)
			}
		}
	}
}

// Run blocks until a termination signal arrives or an endpoint fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.purgeExpiredTokens(ctx)
	}()

	if app.config.NotifyListener {
		l := feed.NewListener(app.config.DatabaseDSN, common.ProductsChangedChannel, app.hub, app.logger.With("module", "feed_listener"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Run(ctx)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "closing database", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
