package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "smart_search/internal/adapters/http_server"
	"smart_search/internal/adapters/naver"
	"smart_search/internal/adapters/observability"
	"smart_search/internal/adapters/tmap"
	"smart_search/internal/app"
	"smart_search/internal/shared"
)

func main() {
	cfg, cfgErr := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfgErr != nil {
		log.Fatal().Err(cfgErr).Msg("configuration error")
	}

	observability.Serve(cfg.MetricsAddr)

	// provider clients
	poi, err := tmap.New(cfg.TmapBase, cfg.TmapKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Tmap client")
	}
	local, err := naver.NewLocal(cfg.NaverBase, cfg.NaverClientID, cfg.NaverClientSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Naver local client")
	}
	geocode, err := naver.NewGeocode(cfg.NCPBase, cfg.NCPKeyID, cfg.NCPKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize NCP geocode client")
	}

	// services
	smart := app.NewSmartSearchService(local, geocode)
	svc := app.NewSearchService(poi, smart, cfg.POICount)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("dashboard listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("shutdown complete")
}
