package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"smart_search/internal/adapters/observability"
	"smart_search/internal/domain"
)

// SmartSearchService runs the strict two-step fallback chain over the Naver
// surfaces: business-name search first, address geocoding only when that
// yields nothing. No retries within a step; a failed call transitions the
// same way as an empty result.
type SmartSearchService struct {
	local domain.LocalSearcher
	geo   domain.Geocoder
}

func NewSmartSearchService(local domain.LocalSearcher, geo domain.Geocoder) *SmartSearchService {
	return &SmartSearchService{local: local, geo: geo}
}

// Search never returns an error: the outcome is labeled with the mode that
// produced it, and when both steps come up empty the first provider failure
// (if any) is retained as the cause for the presentation layer.
func (s *SmartSearchService) Search(ctx context.Context, keyword string, display int, sort domain.SortMode) domain.SearchOutcome {
	places, lerr := s.local.SearchLocal(ctx, keyword, display, sort)
	if lerr != nil {
		log.Warn().Err(lerr).Str("query", keyword).Msg("local search failed, trying geocode fallback")
	}
	if len(places) > 0 {
		observability.ObserveSearch("naver", string(domain.ModeLocal))
		return domain.SearchOutcome{Places: places, Mode: domain.ModeLocal}
	}

	places, gerr := s.geo.Geocode(ctx, keyword)
	if gerr != nil {
		log.Warn().Err(gerr).Str("query", keyword).Msg("geocode fallback failed")
	}
	if len(places) > 0 {
		observability.ObserveSearch("naver", string(domain.ModeGeocode))
		return domain.SearchOutcome{Places: places, Mode: domain.ModeGeocode}
	}

	observability.ObserveSearch("naver", string(domain.ModeNone))
	cause := lerr
	if cause == nil {
		cause = gerr
	}
	return domain.SearchOutcome{Mode: domain.ModeNone, Cause: cause}
}
