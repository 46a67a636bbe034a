package domain

// Coords is a geodetic WGS84 point in decimal degrees.
type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is the single domain entity: one point of interest or geocoded
// address as reported by a provider. Coords is nil when the provider gave no
// usable coordinate; such records still show up in tables but never on maps.
type Place struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Coords  *Coords `json:"coords,omitempty"`
}

// SortMode is the caller-facing sort selector for the local/business search.
// Each provider client maps it to its own enum token.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortReviews   SortMode = "reviews"
)

// SearchMode labels which step of the smart-search chain produced a result.
type SearchMode string

const (
	ModeLocal   SearchMode = "local"   // local/business search hit
	ModeGeocode SearchMode = "geocode" // address geocoding fallback hit
	ModeNone    SearchMode = "none"    // neither step returned anything
)

// SearchOutcome is the orchestrator's return value: the places (possibly
// empty), the mode that produced them, and — when a provider call failed
// along the way and nothing recovered — the failure cause. Cause lets the
// presentation layer tell "nothing found" apart from "the provider is down".
type SearchOutcome struct {
	Places []Place
	Mode   SearchMode
	Cause  error
}

// Found reports whether the outcome carries at least one place.
func (o SearchOutcome) Found() bool { return len(o.Places) > 0 }
