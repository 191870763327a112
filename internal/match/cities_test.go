package match_test

import (
	"reflect"
	"testing"

	"roomscout/internal/domain"
	"roomscout/internal/match"
)

func pstr(s string) *string { return &s }

func TestExtractCities_Empty(t *testing.T) {
	if got := match.ExtractCities(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestExtractCities_BothFieldsAndDedup(t *testing.T) {
	rooms := []domain.Room{
		{RoomID: 1, Hotel: &domain.HotelInfo{HotelID: 10, HotelName: "A", City: pstr("Hanoi")}},
		{RoomID: 2, HotelCity: "Da Nang"}, // denormalized field only
		{RoomID: 3, Hotel: &domain.HotelInfo{HotelID: 11, HotelName: "B", City: pstr("Hanoi")}, HotelCity: "Hanoi"},
		{RoomID: 4}, // contributes nothing
		{RoomID: 5, Hotel: &domain.HotelInfo{HotelID: 12, HotelName: "C", City: pstr("Sài Gòn")}, HotelCity: "Ho Chi Minh"},
	}

	got := match.ExtractCities(rooms)
	want := []string{"Da Nang", "Hanoi", "Ho Chi Minh", "Sài Gòn"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractCities_SortedVietnamese(t *testing.T) {
	rooms := []domain.Room{
		{RoomID: 1, HotelCity: "Đà Nẵng"},
		{RoomID: 2, HotelCity: "Cần Thơ"},
		{RoomID: 3, HotelCity: "An Giang"},
	}
	got := match.ExtractCities(rooms)
	want := []string{"An Giang", "Cần Thơ", "Đà Nẵng"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
