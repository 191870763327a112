package match

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"roomscout/internal/domain"
)

// ExtractCities derives the distinct city strings actually present in the
// room inventory. Both the nested hotel city and the denormalized HotelCity
// field are checked independently; either may contribute. Output is sorted
// with a Vietnamese collator so diacritic-heavy names order the way the
// quick-filter UI expects.
func ExtractCities(rooms []domain.Room) []string {
	seen := make(map[string]struct{})
	var cities []string

	add := func(city string) {
		if city == "" {
			return
		}
		if _, dup := seen[city]; dup {
			return
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}

	for _, r := range rooms {
		if r.Hotel != nil && r.Hotel.City != nil {
			add(*r.Hotel.City)
		}
		add(r.HotelCity)
	}

	collate.New(language.Vietnamese).SortStrings(cities)
	return cities
}
