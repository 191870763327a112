package domain

// Province is one top-level Vietnamese administrative division as served by
// the public division directory. Identity is Code within one fetched list.
type Province struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn,omitempty"`
}

type District struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	NameEn       string `json:"nameEn,omitempty"`
	ProvinceCode string `json:"provinceCode"`
}

type Ward struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	NameEn       string `json:"nameEn,omitempty"`
	DistrictCode string `json:"districtCode"`
}

// FallbackProvinces is served when the division directory is unreachable.
// Ten common provinces, same set the mobile clients shipped with.
var FallbackProvinces = []Province{
	{Code: "79", Name: "Thành phố Hồ Chí Minh"},
	{Code: "01", Name: "Thành phố Hà Nội"},
	{Code: "48", Name: "Thành phố Đà Nẵng"},
	{Code: "92", Name: "Thành phố Cần Thơ"},
	{Code: "31", Name: "Tỉnh Hải Phòng"},
	{Code: "36", Name: "Tỉnh Thái Nguyên"},
	{Code: "75", Name: "Tỉnh Đồng Nai"},
	{Code: "77", Name: "Tỉnh Bà Rịa - Vũng Tàu"},
	{Code: "56", Name: "Tỉnh Khánh Hòa"},
	{Code: "34", Name: "Tỉnh Quảng Ninh"},
}
