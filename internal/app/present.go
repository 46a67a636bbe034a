package app

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"smart_search/internal/domain"
	"smart_search/internal/geo"
)

var validate = validator.New()

// SearchRequest is one dashboard submission. Display and Sort apply to the
// local/business search only; the POI result count comes from configuration.
type SearchRequest struct {
	Query   string          `json:"query" validate:"required"`
	Display int             `json:"display" validate:"gte=1,lte=5"`
	Sort    domain.SortMode `json:"sort" validate:"oneof=relevance reviews"`
}

func (r SearchRequest) Validate() error { return validate.Struct(r) }

// PanelView is one provider path prepared for rendering: the full list for
// the table and the box-filtered subset for the map.
type PanelView struct {
	Provider string            `json:"provider"`
	Mode     domain.SearchMode `json:"mode,omitempty"`
	Places   []domain.Place    `json:"places"`
	Mappable []domain.Place    `json:"mappable"`
	Failed   bool              `json:"failed"`
}

// MapOmitted reports the case where the table has rows but none carry a
// plottable coordinate; the UI shows a notice instead of an empty map.
func (p PanelView) MapOmitted() bool {
	return len(p.Places) > 0 && len(p.Mappable) == 0
}

// DashboardView is the whole response for one query: both provider panels
// plus the running record total across them.
type DashboardView struct {
	Query string    `json:"query"`
	POI   PanelView `json:"poi"`
	Smart PanelView `json:"smart"`
	Total int       `json:"total"`
}

// SearchService drives one query across both provider paths sequentially and
// shapes the results for presentation. Each submission is independent;
// nothing is cached or persisted.
type SearchService struct {
	poi      domain.POISearcher
	smart    *SmartSearchService
	poiCount int
	box      geo.Box
}

func NewSearchService(poi domain.POISearcher, smart *SmartSearchService, poiCount int) *SearchService {
	if poiCount <= 0 {
		poiCount = 10
	}
	return &SearchService{poi: poi, smart: smart, poiCount: poiCount, box: geo.KoreaBox}
}

func (s *SearchService) Search(ctx context.Context, req SearchRequest) (DashboardView, error) {
	if err := req.Validate(); err != nil {
		return DashboardView{}, err
	}

	view := DashboardView{Query: req.Query}

	poiPlaces, err := s.poi.SearchPOI(ctx, req.Query, s.poiCount)
	if err != nil {
		log.Warn().Err(err).Str("query", req.Query).Msg("poi search failed")
	}
	view.POI = s.panel("tmap", poiPlaces, domain.SearchMode(""), err != nil)

	outcome := s.smart.Search(ctx, req.Query, req.Display, req.Sort)
	view.Smart = s.panel("naver", outcome.Places, outcome.Mode, outcome.Cause != nil && !outcome.Found())

	view.Total = len(view.POI.Places) + len(view.Smart.Places)
	return view, nil
}

func (s *SearchService) panel(provider string, places []domain.Place, mode domain.SearchMode, failed bool) PanelView {
	return PanelView{
		Provider: provider,
		Mode:     mode,
		Places:   places,
		Mappable: s.mappable(places),
		Failed:   failed,
	}
}

// mappable keeps only records whose coordinates sit inside the bounding box.
func (s *SearchService) mappable(places []domain.Place) []domain.Place {
	out := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if p.Coords == nil {
			continue
		}
		if !s.box.Contains(p.Coords.Lat, p.Coords.Lon) {
			continue
		}
		out = append(out, p)
	}
	return out
}
