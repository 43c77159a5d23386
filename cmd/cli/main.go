package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/cli"
	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/config"
	"github.com/dmitrijs2005/quickserve/internal/client/localdb"
	"github.com/dmitrijs2005/quickserve/internal/client/metrics"
	"github.com/dmitrijs2005/quickserve/internal/client/session"
	"github.com/dmitrijs2005/quickserve/internal/client/store"
	"github.com/dmitrijs2005/quickserve/internal/logging"
	"github.com/dmitrijs2005/quickserve/internal/telemetry"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, config.LoadConfig())
	stop()

	if err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	shutdown := telemetry.Setup(ctx, logger, "quickserve-cli", cfg.OTLPEndpoint, cfg.OTLPInsecure)
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn(sctx, "telemetry shutdown", "error", err)
		}
	}()

	db, err := localdb.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []session.Option
	if cfg.SessionKey != "" {
		opts = append(opts, session.WithPassphrase(cfg.SessionKey))
	}
	sessions := session.NewSQLiteStore(db, opts...)

	httpClient := client.New(cfg.APIBaseURL, sessions,
		client.WithLogger(logger),
		client.WithTimeout(cfg.RequestTimeout),
	)

	authStore := store.NewAuthStore(ctx, api.NewAuthAPI(httpClient), sessions, logger)
	httpClient.OnTokenRefreshed(func(ctx context.Context, _ session.Session) {
		if err := authStore.Hydrate(ctx); err != nil {
			logger.Warn(ctx, "reload session after refresh", "error", err)
		}
	})
	httpClient.OnSessionExpired(authStore.SessionExpired)

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(ctx, logger, cfg.MetricsAddr)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	app := cli.NewApp(cli.Stores{
		Auth:      authStore,
		Dashboard: store.NewDashboardStore(api.NewProviderAPI(httpClient), logger),
		Customer:  store.NewCustomerStore(api.NewCustomerAPI(httpClient), api.NewPublicAPI(httpClient), logger),
		Admin:     store.NewAdminStore(api.NewAdminAPI(httpClient), logger),
	}, os.Stdin, os.Stdout, logger)

	app.Run(ctx)
	return nil
}

func serveMetrics(ctx context.Context, logger logging.Logger, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info(ctx, "metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server", "error", err)
		}
	}()
	return srv
}
