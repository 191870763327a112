package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"roomscout/internal/adapters/bookingapi"
	server "roomscout/internal/adapters/http_server"
	"roomscout/internal/adapters/observability"
	"roomscout/internal/adapters/provinces"
	redisad "roomscout/internal/adapters/redis"
	"roomscout/internal/app"
	"roomscout/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	backend := bookingapi.New(cfg.BookingBase, cfg.BookingToken, 5)
	directory := provinces.New(cfg.ProvincesBase)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	locations := app.NewLocationService(directory, backend, cache, cfg.CacheTTL)
	filter := app.NewFilterService(backend)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Locations: locations, Filter: filter, Backend: backend})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
