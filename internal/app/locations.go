package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"roomscout/internal/adapters/observability"
	"roomscout/internal/domain"
	"roomscout/internal/match"
)

// LocationService serves the administrative-division reference data and the
// city strings actually present in room inventory, and runs the matcher over
// the two. Reference data is fetched fresh per cache window, never persisted.
type LocationService struct {
	dir      domain.ProvinceDirectory
	backend  domain.RoomsBackend
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewLocationService(dir domain.ProvinceDirectory, backend domain.RoomsBackend, cache domain.Cache, ttl time.Duration) *LocationService {
	return &LocationService{dir: dir, backend: backend, cache: cache, cacheTTL: ttl}
}

// Provinces returns the province list. When the directory is unreachable the
// fixed fallback list is served instead; matching then degrades but the
// caller still gets a usable, displayable list. Never returns an error.
func (s *LocationService) Provinces(ctx context.Context) []domain.Province {
	const key = "locations:provinces"
	var ps []domain.Province
	if ok, _ := s.cache.Get(ctx, key, &ps); ok {
		return ps
	}
	ps, err := s.dir.Provinces(ctx)
	if err != nil || len(ps) == 0 {
		log.Warn().Err(err).Msg("province directory unavailable, serving fallback list")
		return domain.FallbackProvinces
	}
	_ = s.cache.Set(ctx, key, ps, int(s.cacheTTL.Seconds()))
	return ps
}

func (s *LocationService) Districts(ctx context.Context, provinceCode string) ([]domain.District, error) {
	key := fmt.Sprintf("locations:districts:%s", provinceCode)
	var ds []domain.District
	if ok, _ := s.cache.Get(ctx, key, &ds); ok {
		return ds, nil
	}
	ds, err := s.dir.Districts(ctx, provinceCode)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, ds, int(s.cacheTTL.Seconds()))
	return ds, nil
}

func (s *LocationService) Wards(ctx context.Context, districtCode string) ([]domain.Ward, error) {
	key := fmt.Sprintf("locations:wards:%s", districtCode)
	var ws []domain.Ward
	if ok, _ := s.cache.Get(ctx, key, &ws); ok {
		return ws, nil
	}
	ws, err := s.dir.Wards(ctx, districtCode)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, ws, int(s.cacheTTL.Seconds()))
	return ws, nil
}

// KnownCities derives the distinct city strings from the current full room
// inventory, sorted for display.
func (s *LocationService) KnownCities(ctx context.Context) ([]string, error) {
	const key = "locations:cities"
	var cities []string
	if ok, _ := s.cache.Get(ctx, key, &cities); ok {
		return cities, nil
	}
	page, err := s.backend.SearchRooms(ctx, domain.RoomSearchRequest{})
	if err != nil {
		return nil, err
	}
	cities = match.ExtractCities(page.Rooms)
	_ = s.cache.Set(ctx, key, cities, int(s.cacheTTL.Seconds()))
	return cities, nil
}

// MatchCity resolves a free-text city name to a province code. A miss is a
// normal outcome, not an error.
func (s *LocationService) MatchCity(ctx context.Context, city string) (string, bool) {
	code, ok := match.MatchCityToProvince(city, s.Provinces(ctx))
	observability.ObserveCityMatch("to_province", ok)
	return code, ok
}

// CityForProvince picks the inventory city string that best represents the
// province with the given code, if any.
func (s *LocationService) CityForProvince(ctx context.Context, provinceCode string) (string, bool, error) {
	var name string
	for _, p := range s.Provinces(ctx) {
		if p.Code == provinceCode {
			name = p.Name
			break
		}
	}
	if name == "" {
		return "", false, nil
	}
	cities, err := s.KnownCities(ctx)
	if err != nil {
		return "", false, err
	}
	city, ok := match.FindBestMatchingCity(name, cities)
	observability.ObserveCityMatch("to_city", ok)
	return city, ok, nil
}
