package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"roomscout/internal/app"
	"roomscout/internal/domain"
)

type fakeDirectory struct {
	provinces []domain.Province
	districts []domain.District
	wards     []domain.Ward
	err       error
}

func (f *fakeDirectory) Provinces(ctx context.Context) ([]domain.Province, error) {
	return f.provinces, f.err
}
func (f *fakeDirectory) Districts(ctx context.Context, provinceCode string) ([]domain.District, error) {
	return f.districts, f.err
}
func (f *fakeDirectory) Wards(ctx context.Context, districtCode string) ([]domain.Ward, error) {
	return f.wards, f.err
}

// fakeCache stores JSON, same observable behavior as the redis adapter.
type fakeCache struct{ store map[string][]byte }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, _ := json.Marshal(v)
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func newLocationService(dir *fakeDirectory, backend *fakeBackend) *app.LocationService {
	return app.NewLocationService(dir, backend, &fakeCache{}, 10*time.Minute)
}

func TestProvinces_FallbackWhenDirectoryDown(t *testing.T) {
	s := newLocationService(&fakeDirectory{err: errors.New("upstream down")}, &fakeBackend{})

	ps := s.Provinces(context.Background())
	if !reflect.DeepEqual(ps, domain.FallbackProvinces) {
		t.Fatalf("expected the fixed fallback list, got %d provinces", len(ps))
	}
}

func TestProvinces_CachedAfterFirstFetch(t *testing.T) {
	dir := &fakeDirectory{provinces: []domain.Province{{Code: "01", Name: "Thành phố Hà Nội"}}}
	s := newLocationService(dir, &fakeBackend{})

	first := s.Provinces(context.Background())
	if len(first) != 1 || first[0].Code != "01" {
		t.Fatalf("unexpected provinces: %+v", first)
	}

	// directory breaks; cached list must still be served
	dir.err = errors.New("upstream down")
	second := s.Provinces(context.Background())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected cached provinces, got %+v", second)
	}
}

func TestKnownCities_DerivedFromInventory(t *testing.T) {
	backend := &fakeBackend{searchPage: domain.RoomsPage{Rooms: []domain.Room{
		{RoomID: 1, Hotel: &domain.HotelInfo{HotelID: 1, HotelName: "A", City: ptr("Hanoi")}},
		{RoomID: 2, HotelCity: "Da Nang"},
		{RoomID: 3, HotelCity: "Hanoi"},
	}}}
	s := newLocationService(&fakeDirectory{}, backend)

	cities, err := s.KnownCities(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if want := []string{"Da Nang", "Hanoi"}; !reflect.DeepEqual(cities, want) {
		t.Fatalf("want %v, got %v", want, cities)
	}
}

func TestKnownCities_SearchFailurePropagates(t *testing.T) {
	backend := &fakeBackend{searchErr: errors.New("search down")}
	s := newLocationService(&fakeDirectory{}, backend)

	if _, err := s.KnownCities(context.Background()); err == nil {
		t.Fatal("expected error when inventory fetch fails")
	}
}

func TestMatchCity_AgainstFallbackList(t *testing.T) {
	// directory down: matching still works over the fallback provinces
	s := newLocationService(&fakeDirectory{err: errors.New("down")}, &fakeBackend{})

	code, ok := s.MatchCity(context.Background(), "Hà Nội")
	if !ok || code != "01" {
		t.Fatalf("want 01, got %q ok=%v", code, ok)
	}
	if code, ok := s.MatchCity(context.Background(), ""); ok {
		t.Fatalf("empty city must not match, got %q", code)
	}
}

func TestCityForProvince_UsesAliases(t *testing.T) {
	dir := &fakeDirectory{provinces: []domain.Province{{Code: "79", Name: "Thành phố Hồ Chí Minh"}}}
	backend := &fakeBackend{searchPage: domain.RoomsPage{Rooms: []domain.Room{
		{RoomID: 1, HotelCity: "Ho Chi Minh"},
		{RoomID: 2, HotelCity: "Hanoi"},
	}}}
	s := newLocationService(dir, backend)

	city, ok, err := s.CityForProvince(context.Background(), "79")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !ok || city != "Ho Chi Minh" {
		t.Fatalf("want Ho Chi Minh, got %q ok=%v", city, ok)
	}

	city, ok, err = s.CityForProvince(context.Background(), "99")
	if err != nil || ok || city != "" {
		t.Fatalf("unknown code should yield no match, got %q ok=%v err=%v", city, ok, err)
	}
}
