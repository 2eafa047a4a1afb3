package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lidofinance/web3-provider/internal/connectors/metrics"
	"github.com/lidofinance/web3-provider/internal/env"
	"github.com/lidofinance/web3-provider/internal/http/handlers/ethereum"
	"github.com/lidofinance/web3-provider/internal/http/handlers/health"
	"github.com/lidofinance/web3-provider/internal/http/handlers/nimiq"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

type App struct {
	env      *env.AppConfig
	Logger   *slog.Logger
	Metrics  *metrics.Store
	Services *Services
}

func New(config *env.AppConfig, logger *slog.Logger, promStore *metrics.Store, services *Services) *App {
	return &App{
		env:      config,
		Logger:   logger,
		Metrics:  promStore,
		Services: services,
	}
}

func (a *App) RunHTTPServer(ctx context.Context, g *errgroup.Group, appPort uint, router http.Handler) {
	server := &http.Server{
		Addr:           fmt.Sprintf(`:%d`, appPort),
		Handler:        router,
		ReadTimeout:    defaultReadTimeout,
		WriteTimeout:   defaultWriteTimeout,
		IdleTimeout:    defaultIdleTimeout,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultReadTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
}

func (a *App) RegisterRoutes(r chi.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	nimiqH := nimiq.New(a.Logger, a.Services.Nimiq)
	r.Route("/nimiq", func(r chi.Router) {
		r.Post("/request", nimiqH.Request)
		r.Get("/network", nimiqH.Network)
		r.Get("/accounts", nimiqH.Accounts)
		r.Post("/disconnect", nimiqH.Disconnect)
		r.Get("/connected", nimiqH.Connected)
	})

	r.Post("/ethereum/rpc", ethereum.New(a.Logger, a.Services.Ethereum).Handler)

	a.RegisterInfraRoutes(r)
}

func (a *App) RegisterInfraRoutes(r chi.Router) {
	r.Get("/health", health.New().Handler)
	r.Get("/metrics", promhttp.HandlerFor(a.Metrics.Prometheus, promhttp.HandlerOpts{}).ServeHTTP)

	r.HandleFunc("/debug/pprof/", pprof.Index)
	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	r.HandleFunc("/debug/pprof/{action}", pprof.Index)
}
