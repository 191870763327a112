package bookingapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"roomscout/internal/domain"
)

// flexFloat decodes a number that some backend deployments serialize as a
// string ("120000" or "120000,50").
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			*f = 0
			return nil // malformed price degrades to 0, not a decode failure
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type wireRoom struct {
	RoomID      int64             `json:"roomId"`
	Hotel       *domain.HotelInfo `json:"hotel"`
	RoomType    string            `json:"roomType"`
	Price       flexFloat         `json:"price"`
	Capacity    int               `json:"capacity"`
	Description *string           `json:"description"`
	Images      []string          `json:"images"`
	Rating      *float64          `json:"rating"`
	ReviewCount *int              `json:"reviewCount"`

	HotelName     string `json:"hotelName"`
	HotelCity     string `json:"hotelCity"`
	HotelLocation string `json:"hotelLocation"`
}

type roomsPage struct {
	Rooms         []wireRoom `json:"rooms"`
	Page          int        `json:"page"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int        `json:"totalElements"`
	Size          int        `json:"size"`
	First         *bool      `json:"first"`
	Last          *bool      `json:"last"`
}

// toDomain fills the denormalized hotel fields from the nested object so the
// filter fallback always has HotelCity/HotelLocation/HotelName to match on.
func (p roomsPage) toDomain() domain.RoomsPage {
	out := domain.RoomsPage{
		Page:          p.Page,
		TotalPages:    max(p.TotalPages, 1),
		TotalElements: p.TotalElements,
		Size:          p.Size,
		First:         p.First == nil || *p.First,
		Last:          p.Last == nil || *p.Last,
	}
	if out.TotalElements == 0 {
		out.TotalElements = len(p.Rooms)
	}
	if out.Size == 0 {
		out.Size = len(p.Rooms)
	}
	for _, w := range p.Rooms {
		r := domain.Room{
			RoomID:        w.RoomID,
			Hotel:         w.Hotel,
			RoomType:      w.RoomType,
			Price:         float64(w.Price),
			Capacity:      w.Capacity,
			Description:   w.Description,
			Images:        w.Images,
			Rating:        w.Rating,
			ReviewCount:   w.ReviewCount,
			HotelName:     w.HotelName,
			HotelCity:     w.HotelCity,
			HotelLocation: w.HotelLocation,
		}
		if w.Hotel != nil {
			if r.HotelName == "" {
				r.HotelName = w.Hotel.HotelName
			}
			if r.HotelCity == "" && w.Hotel.City != nil {
				r.HotelCity = *w.Hotel.City
			}
			if r.HotelLocation == "" && w.Hotel.Address != nil {
				r.HotelLocation = *w.Hotel.Address
			}
		}
		out.Rooms = append(out.Rooms, r)
	}
	return out
}
