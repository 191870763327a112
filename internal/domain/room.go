package domain

type HotelInfo struct {
	HotelID   int64   `json:"hotelId"`
	HotelName string  `json:"hotelName"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// Room is the backend's room record plus the denormalized hotel fields the
// mobile clients rely on (HotelCity/HotelLocation mirror Hotel.City/Address).
type Room struct {
	RoomID      int64      `json:"roomId"`
	Hotel       *HotelInfo `json:"hotel,omitempty"`
	RoomType    string     `json:"roomType"`
	Price       float64    `json:"price"`
	Capacity    int        `json:"capacity"`
	Description *string    `json:"description,omitempty"`
	Images      []string   `json:"images,omitempty"`

	HotelName     string   `json:"hotelName,omitempty"`
	HotelCity     string   `json:"hotelCity,omitempty"`
	HotelLocation string   `json:"hotelLocation,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   *int     `json:"reviewCount,omitempty"`
}

// RatingOrZero treats an absent rating as 0 for comparison purposes.
func (r Room) RatingOrZero() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

type RoomsPage struct {
	Rooms         []Room `json:"rooms"`
	Page          int    `json:"page"`
	TotalPages    int    `json:"totalPages"`
	TotalElements int    `json:"totalElements"`
	Size          int    `json:"size"`
	First         bool   `json:"first"`
	Last          bool   `json:"last"`
}

type SortField string

type SortOrder string

const (
	SortByPrice  SortField = "price"
	SortByRating SortField = "rating"
	SortByName   SortField = "name"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterCriteria is a per-request value object; zero value means "no filters".
type FilterCriteria struct {
	City      *string   `json:"city,omitempty"`
	Country   *string   `json:"country,omitempty"`
	MinPrice  *float64  `json:"minPrice,omitempty"`
	MaxPrice  *float64  `json:"maxPrice,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	SortBy    SortField `json:"sortBy,omitempty"`
	SortOrder SortOrder `json:"sortOrder,omitempty"`
}

// Empty reports the "cleared filters" identity case.
func (c FilterCriteria) Empty() bool {
	return c.City == nil && c.Country == nil &&
		c.MinPrice == nil && c.MaxPrice == nil &&
		c.Capacity == nil && c.SortBy == ""
}
