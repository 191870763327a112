// cmd/warmup pre-computes the province→city match table and primes the
// redis caches, so the first mobile request after a deploy doesn't pay for
// the upstream round-trips.
package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"roomscout/internal/adapters/bookingapi"
	"roomscout/internal/adapters/observability"
	"roomscout/internal/adapters/provinces"
	redisad "roomscout/internal/adapters/redis"
	"roomscout/internal/app"
	"roomscout/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("booking", cfg.BookingBase).
		Str("provinces", cfg.ProvincesBase).
		Int("workers", cfg.Workers).
		Msg("warmup starting")

	backend := bookingapi.New(cfg.BookingBase, cfg.BookingToken, 5)
	directory := provinces.New(cfg.ProvincesBase)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	locations := app.NewLocationService(directory, backend, cache, cfg.CacheTTL)

	// primes the province and city caches as a side effect
	provinceList := locations.Provinces(ctx)
	cities, err := locations.KnownCities(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("room inventory fetch failed")
	}
	log.Info().Int("provinces", len(provinceList)).Int("cities", len(cities)).Msg("reference data loaded")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, p := range provinceList {
		p := p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			city, ok, err := locations.CityForProvince(ctx, p.Code)
			if err != nil {
				log.Warn().Str("code", p.Code).Err(err).Msg("match failed")
				return
			}
			if !ok {
				log.Debug().Str("code", p.Code).Str("province", p.Name).Msg("no inventory city")
				return
			}
			key := fmt.Sprintf("match:province:%s", p.Code)
			if err := cache.Set(ctx, key, city, int(cfg.CacheTTL.Seconds())); err != nil {
				log.Warn().Str("code", p.Code).Err(err).Msg("cache set failed")
				return
			}
			log.Info().Str("code", p.Code).Str("province", p.Name).Str("city", city).Msg("match cached")
		}()
	}

	wg.Wait()
	log.Info().Msg("warmup completed")
}
