package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/feed"
	httpapi "github.com/cappelnord/codeklavier-ar-master/internal/master/http"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/service"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store/drivers/jsonfile"
	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

// BuildVersion is stamped at build time:
//
//	-ldflags "-X github.com/cappelnord/codeklavier-ar-master/internal/master/app.BuildVersion=v1.2.3"
var BuildVersion = "dev"

// Application owns the channel store, the live feed and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	store store.Store
	hub   *feed.Hub

	cancelFeed context.CancelFunc

	channelService *service.ChannelService
	updateService  *service.UpdateService

	server *http.Server
	router *httpapi.Router
}

// New loads both documents and wires the services and routes. Nothing is
// listening until Run.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: slogx.New(cfg.logConfig(BuildVersion)),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (app *Application) Run() error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feedCtx, cancelFeed := context.WithCancel(context.Background())
	app.cancelFeed = cancelFeed
	go app.hub.Run(feedCtx)

	app.logger.Info("master service starting",
		"port", app.cfg.Port,
		"channels", app.channelService.Count(feedCtx),
		"response_delay", app.cfg.ResponseDelay,
	)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(fmt.Errorf("serve on %s: %w", app.server.Addr, err), app.Shutdown())
	case <-sigCtx.Done():
		// A second signal kills the process.
		stop()
		app.logger.Info("shutdown signal received")
		return app.Shutdown()
	}
}

// Shutdown drains HTTP requests, closes feed connections and writes the
// channels document one last time. The document is written even when
// draining times out.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down master service")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	var errs []error
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "err", err)
		errs = append(errs, err, app.server.Close())
	}

	// Hijacked websocket connections are invisible to the server.
	if app.cancelFeed != nil {
		app.cancelFeed()
		select {
		case <-app.hub.Done():
		case <-ctx.Done():
			app.logger.Warn("feed did not stop in time")
		}
	}

	if err := app.store.Close(); err != nil {
		app.logger.Error("final write of channels document failed", "err", err)
		errs = append(errs, err)
	}

	app.logger.Info("master service stopped", "served", app.router.Served())
	return errors.Join(errs...)
}

func (app *Application) initStore() error {
	st, err := jsonfile.NewStore(jsonfile.Options{
		ChannelsFile:         app.cfg.ChannelsFile,
		ChannelsTemplateFile: app.cfg.ChannelsTemplateFile,
		DirectoryFile:        app.cfg.AppFile,
		DirectoryTemplate:    app.cfg.AppTemplateFile,
	})
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	app.store = st

	dir := st.Directory()
	for _, id := range dir.ListPrimary() {
		if !st.Channels().Exists(context.Background(), id) {
			app.logger.Warn("listed channel has no record", "channel", id)
		}
	}
	for id := range dir.Overrides {
		if !st.Channels().Exists(context.Background(), id) {
			app.logger.Warn("websocket override for unknown channel", "channel", id)
		}
	}

	app.logger.Info("store loaded",
		"channels_file", app.cfg.ChannelsFile,
		"app_file", app.cfg.AppFile,
		"listed", len(dir.ChannelList),
		"overrides", len(dir.Overrides),
	)
	return nil
}

func (app *Application) initServices() {
	app.hub = feed.NewHub(app.logger.With("component", "feed"))

	app.channelService = &service.ChannelService{Store: app.store}
	app.updateService = &service.UpdateService{Store: app.store, Notifier: app.hub}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.store, app.logger)
	router.ChannelService = app.channelService
	router.UpdateService = app.updateService
	router.Feed = app.hub
	router.AllowedOrigins = app.cfg.WSAllowedOrigins
	router.InfoURL = app.cfg.InfoURL
	router.ResponseDelay = app.cfg.ResponseDelay
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
