// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"roomscout/internal/app"
	"roomscout/internal/domain"
)

type Handlers struct {
	Locations *app.LocationService
	Filter    *app.FilterService
	Backend   domain.RoomsBackend
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/locations/provinces", h.listProvinces)
	s.mux.Get("/v1/locations/provinces/{code}/districts", h.listDistricts)
	s.mux.Get("/v1/locations/districts/{code}/wards", h.listWards)
	s.mux.Get("/v1/locations/cities", h.listCities)
	s.mux.Get("/v1/locations/match", h.matchCity)
	s.mux.Post("/v1/rooms/filter", h.filterRooms)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCachedJSON handles the ETag / If-None-Match dance shared by the read endpoints.
func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) listProvinces(w http.ResponseWriter, r *http.Request) {
	// never fails: falls back to the fixed list when the directory is down
	writeCachedJSON(w, r, h.Locations.Provinces(r.Context()))
}

func (h *Handlers) listDistricts(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	ds, err := h.Locations.Districts(r.Context(), code)
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Unavailable", "district directory unreachable")
		return
	}
	writeCachedJSON(w, r, ds)
}

func (h *Handlers) listWards(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	ws, err := h.Locations.Wards(r.Context(), code)
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Unavailable", "ward directory unreachable")
		return
	}
	writeCachedJSON(w, r, ws)
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Locations.KnownCities(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Unavailable", "room inventory unreachable")
		return
	}
	if cities == nil {
		cities = []string{}
	}
	writeCachedJSON(w, r, cities)
}

type matchResponse struct {
	City         string  `json:"city"`
	ProvinceCode *string `json:"provinceCode"`
	Matched      bool    `json:"matched"`
}

func (h *Handlers) matchCity(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	resp := matchResponse{City: city}
	if code, ok := h.Locations.MatchCity(r.Context(), city); ok {
		resp.ProvinceCode = &code
		resp.Matched = true
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to write matchCity body")
	}
}

func validCriteria(c domain.FilterCriteria) bool {
	switch c.SortBy {
	case "", domain.SortByPrice, domain.SortByRating, domain.SortByName:
	default:
		return false
	}
	switch c.SortOrder {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return false
	}
	return true
}

func (h *Handlers) filterRooms(w http.ResponseWriter, r *http.Request) {
	var criteria domain.FilterCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be filter criteria JSON")
		return
	}
	if !validCriteria(criteria) {
		writeProblem(w, http.StatusBadRequest, "Invalid Criteria", "sortBy must be price|rating|name, sortOrder asc|desc")
		return
	}

	// full inventory feeds both the identity case and the local fallback;
	// if even that fetch fails the fallback computes over an empty list,
	// which is a valid (empty) displayable result
	var allRooms []domain.Room
	if page, err := h.Backend.SearchRooms(r.Context(), domain.RoomSearchRequest{}); err == nil {
		allRooms = page.Rooms
	} else {
		log.Warn().Err(err).Msg("full inventory fetch failed")
	}

	rooms, current := h.Filter.Apply(r.Context(), criteria, allRooms)
	if !current {
		writeProblem(w, http.StatusConflict, "Superseded", "a newer filter request was issued")
		return
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(struct {
		Rooms []domain.Room `json:"rooms"`
		Total int           `json:"total"`
	}{rooms, len(rooms)}); err != nil {
		log.Error().Err(err).Msg("failed to write filterRooms body")
	}
}
