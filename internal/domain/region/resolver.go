// Package region maps free-text place references to one of Singapore's
// five NEA regions, falling back to the national aggregate.
package region

import "strings"

// Code identifies an NEA reporting region.
type Code string

const (
	Central  Code = "central"
	East     Code = "east"
	North    Code = "north"
	South    Code = "south"
	West     Code = "west"
	National Code = "national"
)

// entry pairs a normalized place token with its region. The table is a
// slice, not a map: lookup is first-containment-match-wins and the original
// table order is the tie-break when a query mentions several places.
type entry struct {
	token  string
	region Code
}

// placeTable covers the named subzones of Singapore. Tokens are lowercase
// with spaces removed so they match the normalized query directly.
var placeTable = []entry{
	{"central", Central}, {"bishan", Central}, {"bukitmerah", Central}, {"bukittimah", Central},
	{"botanicgardens", Central}, {"downtowncore", Central}, {"geylang", Central}, {"kallang", Central},
	{"tanglin", Central}, {"marinaeast", Central}, {"marinasouth", Central}, {"marineparade", Central},
	{"newton", Central}, {"novena", Central}, {"orchard", Central}, {"outram", Central},
	{"queenstown", Central}, {"museum", Central}, {"rivervalley", Central}, {"rochor", Central},
	{"singaporeriver", Central}, {"straitsview", Central}, {"toapayoh", Central}, {"macritchie", Central},
	{"centralwatercatchment", Central},

	{"east", East}, {"bedok", East}, {"changi", East}, {"changibay", East}, {"hougang", East},
	{"northeasternislands", East}, {"pasirris", East}, {"payalebar", East},
	{"punggol", East}, {"sengkang", East}, {"serangoon", East},
	{"tampines", East}, {"northeast", East},

	{"north", North}, {"angmokio", North}, {"limchukang", North},
	{"mandai", North}, {"seletar", North}, {"sembawang", North},
	{"simpang", North}, {"sungeikadut", North}, {"woodlands", North},

	{"south", South}, {"southernislands", South}, {"harbourfront", South}, {"telokblangah", South},

	{"west", West}, {"boonlay", West}, {"bukitbatok", West}, {"bukitpanjang", West},
	{"choachukang", West}, {"clementi", West}, {"jurongeast", West},
	{"jurongwest", West}, {"jurong", West}, {"pioneer", West}, {"tengah", West},
	{"tuas", West}, {"westernwatercatchment", West},
}

// Resolve extracts a region code from free text. There is no error path:
// text mentioning no known place resolves to National.
func Resolve(text string) Code {
	normalized := Normalize(text)
	for _, e := range placeTable {
		if strings.Contains(normalized, e.token) {
			return e.region
		}
	}
	return National
}

// FromArea maps an upstream forecast area name to its region using exact
// token equality, or "" when the area is unknown. Area names arrive with
// spaces and hyphens ("Ang Mo Kio", "Boon Lay (West)") so they are
// normalized the same way the table tokens were.
func FromArea(area string) Code {
	normalized := strings.ReplaceAll(Normalize(area), "-", "")
	for _, e := range placeTable {
		if normalized == e.token {
			return e.region
		}
	}
	return ""
}

// Normalize lowercases and removes spaces so substring checks are robust
// against casing and spacing variants.
func Normalize(text string) string {
	return strings.ReplaceAll(strings.ToLower(text), " ", "")
}

// All lists the five concrete regions, excluding National.
func All() []Code {
	return []Code{Central, East, North, South, West}
}
