package match

import (
	"strings"

	"roomscout/internal/domain"
)

// provinceRule inspects the whole province list and reports the first
// province it is confident about. Rules are tried in order; ties within a
// rule are broken by province list order.
type provinceRule func(city string, provinces []domain.Province) (string, bool)

// Ordered rule chain for MatchCityToProvince. The containment checks are
// best-effort: a short province name that happens to be a substring of an
// unrelated city string is an accepted false positive.
var provinceRules = []provinceRule{
	matchFullName,
	matchStrippedName,
}

// MatchCityToProvince decides which province a free-text city name refers
// to. Absence of a match is an expected outcome, not an error; the returned
// code is always taken from the supplied list.
func MatchCityToProvince(cityName string, provinces []domain.Province) (string, bool) {
	city := Normalize(cityName)
	if city == "" {
		return "", false
	}
	for _, rule := range provinceRules {
		if code, ok := rule(city, provinces); ok {
			return code, true
		}
	}
	return "", false
}

// matchFullName: exact or containment (either direction) on normalized full names.
func matchFullName(city string, provinces []domain.Province) (string, bool) {
	for _, p := range provinces {
		name := Normalize(p.Name)
		if name == "" {
			continue
		}
		if city == name || strings.Contains(city, name) || strings.Contains(name, city) {
			return p.Code, true
		}
	}
	return "", false
}

// matchStrippedName: same checks after dropping administrative prefixes from both sides.
func matchStrippedName(city string, provinces []domain.Province) (string, bool) {
	stripped := StripPrefix(city)
	if stripped == "" {
		return "", false
	}
	for _, p := range provinces {
		name := StripPrefix(Normalize(p.Name))
		if name == "" {
			continue
		}
		if stripped == name || strings.Contains(stripped, name) || strings.Contains(name, stripped) {
			return p.Code, true
		}
	}
	return "", false
}

// AliasTable maps a canonical (normalized, prefix-stripped) province name
// fragment to the Latin-script and abbreviation variants seen in room data.
type AliasTable map[string][]string

// DefaultAliases covers the three cities whose inventory labels routinely
// diverge from the administrative name.
var DefaultAliases = AliasTable{
	"hồ chí minh": {"ho chi minh", "hcm", "sài gòn", "saigon"},
	"hà nội":      {"hanoi", "ha noi"},
	"đà nẵng":     {"da nang", "danang"},
}

// FindBestMatchingCity is the inverse direction: given a province's display
// name, pick the known city string (from actual room inventory) that most
// plausibly represents it. Uses DefaultAliases.
func FindBestMatchingCity(provinceName string, knownCities []string) (string, bool) {
	return FindBestMatchingCityWith(provinceName, knownCities, DefaultAliases)
}

// FindBestMatchingCityWith runs the same rule chain against a caller-supplied
// alias table. Precedence: exact on normalized and prefix-stripped names,
// then containment either direction on stripped names, then aliases.
func FindBestMatchingCityWith(provinceName string, knownCities []string, aliases AliasTable) (string, bool) {
	province := Normalize(provinceName)
	stripped := StripPrefix(province)

	for _, city := range knownCities {
		c := Normalize(city)
		if c != "" && (c == province || c == stripped) {
			return city, true
		}
	}

	if stripped != "" {
		for _, city := range knownCities {
			c := Normalize(city)
			if c == "" {
				continue
			}
			if strings.Contains(c, stripped) || strings.Contains(stripped, c) {
				return city, true
			}
		}
	}

	for key, variants := range aliases {
		if !strings.Contains(stripped, key) {
			continue
		}
		for _, city := range knownCities {
			c := Normalize(city)
			for _, v := range variants {
				if strings.Contains(c, v) {
					return city, true
				}
			}
		}
	}

	return "", false
}
