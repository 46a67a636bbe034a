package domain

import "context"

// POISearcher is the keyword POI search path (rendered standalone).
type POISearcher interface {
	SearchPOI(ctx context.Context, keyword string, count int) ([]Place, error)
}

// LocalSearcher is the business-name search path, first step of the
// smart-search chain. display is clamped to the provider's 1..5 bound.
type LocalSearcher interface {
	SearchLocal(ctx context.Context, keyword string, display int, sort SortMode) ([]Place, error)
}

// Geocoder resolves an address-like query to at most one place, second step
// of the smart-search chain.
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]Place, error)
}
