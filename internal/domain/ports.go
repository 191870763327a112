package domain

import "context"

// RoomsBackend is the booking backend's room search surface. SearchRooms with
// a zero request returns the full inventory; FilterRooms is the server-side
// filtered/sorted variant and may fail independently of SearchRooms.
type RoomsBackend interface {
	SearchRooms(ctx context.Context, req RoomSearchRequest) (RoomsPage, error)
	FilterRooms(ctx context.Context, req RoomFilterRequest) (RoomsPage, error)
}

// ProvinceDirectory is the public administrative-division provider.
type ProvinceDirectory interface {
	Provinces(ctx context.Context) ([]Province, error)
	Districts(ctx context.Context, provinceCode string) ([]District, error)
	Wards(ctx context.Context, districtCode string) ([]Ward, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Wire shapes for the booking backend.

type RoomSearchRequest struct {
	Keyword string `json:"keyword,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	HotelID int64  `json:"hotelId,omitempty"`
	Page    int    `json:"page,omitempty"`
	Size    int    `json:"size,omitempty"`
}

// RoomFilterRequest is the backend's filter shape. The UI exposes a single
// capacity value, sent as both bounds (exact-match guest count).
type RoomFilterRequest struct {
	City          *string  `json:"city,omitempty"`
	Country       *string  `json:"country,omitempty"`
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	MinCapacity   *int     `json:"minCapacity,omitempty"`
	MaxCapacity   *int     `json:"maxCapacity,omitempty"`
	SortBy        string   `json:"sortBy"`
	SortDirection string   `json:"sortDirection"`
}
