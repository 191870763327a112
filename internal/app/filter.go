package app

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"roomscout/internal/adapters/observability"
	"roomscout/internal/domain"
)

// FilterService applies filter criteria to a room search, preferring the
// backend's filtered result and recomputing locally over the already-fetched
// inventory when the remote call fails. Filtering is advisory UX: the caller
// never sees an error, only the best result we can compute.
type FilterService struct {
	backend domain.RoomsBackend
	seq     atomic.Uint64
}

func NewFilterService(b domain.RoomsBackend) *FilterService {
	return &FilterService{backend: b}
}

// Apply returns the filtered room list and whether the result is still
// current. Each call takes a fresh token from a monotonic sequence; a call
// that finishes after a newer one has been issued reports current=false and
// its result must be discarded, so a slow early response can never overwrite
// a faster later one.
func (s *FilterService) Apply(ctx context.Context, c domain.FilterCriteria, allRooms []domain.Room) ([]domain.Room, bool) {
	token := s.seq.Add(1)

	if c.Empty() {
		// cleared filters: identity, same slice, same order
		return allRooms, s.seq.Load() == token
	}

	rooms := s.filtered(ctx, c, allRooms)
	if s.seq.Load() != token {
		return nil, false
	}
	return rooms, true
}

func (s *FilterService) filtered(ctx context.Context, c domain.FilterCriteria, allRooms []domain.Room) []domain.Room {
	page, err := s.backend.FilterRooms(ctx, buildFilterRequest(c))
	if err == nil {
		// server result is already filtered and sorted; use verbatim
		return page.Rooms
	}
	log.Warn().Err(err).Msg("remote filter failed, falling back to local filtering")
	observability.ObserveFilterFallback()
	return fallbackFilter(c, allRooms)
}

// buildFilterRequest translates UI criteria to the backend's shape. The
// single capacity value becomes both bounds (exact guest-count semantics);
// "name" sorting is not supported by the backend and degrades to price.
func buildFilterRequest(c domain.FilterCriteria) domain.RoomFilterRequest {
	sortBy := "price"
	if c.SortBy == domain.SortByRating {
		sortBy = "rating"
	}
	dir := "ASC"
	if c.SortOrder == domain.SortDesc {
		dir = "DESC"
	}
	return domain.RoomFilterRequest{
		City:          c.City,
		Country:       c.Country,
		MinPrice:      c.MinPrice,
		MaxPrice:      c.MaxPrice,
		MinCapacity:   c.Capacity,
		MaxCapacity:   c.Capacity,
		SortBy:        sortBy,
		SortDirection: dir,
	}
}

// fallbackFilter recomputes an equivalent result over the in-memory room
// list. Always returns a subset of its input, never errors.
func fallbackFilter(c domain.FilterCriteria, allRooms []domain.Room) []domain.Room {
	rooms := make([]domain.Room, len(allRooms))
	copy(rooms, allRooms)

	if c.City != nil && *c.City != "" {
		needle := strings.ToLower(*c.City)
		rooms = keep(rooms, func(r domain.Room) bool {
			return strings.Contains(strings.ToLower(r.HotelCity), needle) ||
				strings.Contains(strings.ToLower(r.HotelLocation), needle) ||
				strings.Contains(strings.ToLower(r.HotelName), needle)
		})
	}
	if c.MinPrice != nil {
		minP := *c.MinPrice
		rooms = keep(rooms, func(r domain.Room) bool { return r.Price >= minP })
	}
	if c.MaxPrice != nil {
		maxP := *c.MaxPrice
		rooms = keep(rooms, func(r domain.Room) bool { return r.Price <= maxP })
	}

	if c.SortBy != "" {
		key := func(r domain.Room) float64 { return r.Price }
		if c.SortBy == domain.SortByRating {
			key = func(r domain.Room) float64 { return r.RatingOrZero() }
		}
		sort.SliceStable(rooms, func(i, j int) bool {
			if c.SortOrder == domain.SortDesc {
				return key(rooms[i]) > key(rooms[j])
			}
			return key(rooms[i]) < key(rooms[j])
		})
	}
	return rooms
}

func keep(rooms []domain.Room, pred func(domain.Room) bool) []domain.Room {
	out := rooms[:0]
	for _, r := range rooms {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
