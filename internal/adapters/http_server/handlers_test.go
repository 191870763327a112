package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roomscout/internal/adapters/http_server"
	"roomscout/internal/app"
	"roomscout/internal/domain"
)

type fakeBackend struct {
	searchPage domain.RoomsPage
	searchErr  error
	filterPage domain.RoomsPage
	filterErr  error
}

func (f *fakeBackend) SearchRooms(ctx context.Context, req domain.RoomSearchRequest) (domain.RoomsPage, error) {
	return f.searchPage, f.searchErr
}
func (f *fakeBackend) FilterRooms(ctx context.Context, req domain.RoomFilterRequest) (domain.RoomsPage, error) {
	return f.filterPage, f.filterErr
}

type fakeDirectory struct {
	provinces []domain.Province
	err       error
}

func (f *fakeDirectory) Provinces(ctx context.Context) ([]domain.Province, error) {
	return f.provinces, f.err
}
func (f *fakeDirectory) Districts(ctx context.Context, code string) ([]domain.District, error) {
	return nil, f.err
}
func (f *fakeDirectory) Wards(ctx context.Context, code string) ([]domain.Ward, error) {
	return nil, f.err
}

type mapCache struct{ store map[string][]byte }

func (c *mapCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *mapCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, _ := json.Marshal(v)
	c.store[key] = b
	return nil
}
func (c *mapCache) Del(ctx context.Context, key string) error { delete(c.store, key); return nil }

func newTestServer(backend *fakeBackend, dir *fakeDirectory) *httptest.Server {
	loc := app.NewLocationService(dir, backend, &mapCache{}, 10*time.Minute)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Locations: loc,
		Filter:    app.NewFilterService(backend),
		Backend:   backend,
	})
	return httptest.NewServer(srv.Mux())
}

func TestListProvinces_ETag(t *testing.T) {
	dir := &fakeDirectory{provinces: []domain.Province{{Code: "01", Name: "Thành phố Hà Nội"}}}
	ts := newTestServer(&fakeBackend{}, dir)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/locations/provinces")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	var ps []domain.Province
	if err := json.NewDecoder(res.Body).Decode(&ps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ps) != 1 || ps[0].Code != "01" {
		t.Fatalf("unexpected body: %+v", ps)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/locations/provinces", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET 2: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res2.StatusCode)
	}
}

func TestMatchCity(t *testing.T) {
	dir := &fakeDirectory{provinces: []domain.Province{{Code: "48", Name: "Thành phố Đà Nẵng"}}}
	ts := newTestServer(&fakeBackend{}, dir)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/locations/match?city=" + "%C4%90%C3%A0%20N%E1%BA%B5ng") // Đà Nẵng
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()

	var body struct {
		ProvinceCode *string `json:"provinceCode"`
		Matched      bool    `json:"matched"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Matched || body.ProvinceCode == nil || *body.ProvinceCode != "48" {
		t.Fatalf("unexpected match: %+v", body)
	}
}

func TestFilterRooms_FallbackOnRemoteFailure(t *testing.T) {
	backend := &fakeBackend{
		searchPage: domain.RoomsPage{Rooms: []domain.Room{
			{RoomID: 1, Price: 100}, {RoomID: 2, Price: 200}, {RoomID: 3, Price: 300},
		}},
		filterErr: errors.New("backend filter down"),
	}
	ts := newTestServer(backend, &fakeDirectory{})
	defer ts.Close()

	res, err := http.Post(ts.URL+"/v1/rooms/filter", "application/json",
		strings.NewReader(`{"minPrice":150,"sortBy":"price","sortOrder":"desc"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body struct {
		Rooms []domain.Room `json:"rooms"`
		Total int           `json:"total"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 2 || body.Rooms[0].Price != 300 || body.Rooms[1].Price != 200 {
		t.Fatalf("unexpected fallback result: %+v", body)
	}
}

func TestFilterRooms_InvalidCriteria(t *testing.T) {
	ts := newTestServer(&fakeBackend{}, &fakeDirectory{})
	defer ts.Close()

	res, err := http.Post(ts.URL+"/v1/rooms/filter", "application/json",
		strings.NewReader(`{"sortBy":"distance"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("expected problem+json, got %s", ct)
	}
}
