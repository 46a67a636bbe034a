package naver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smart_search/internal/domain"
	"smart_search/internal/geo"
)

const defaultGeocodeBase = "https://maps.apigw.ntruss.com"

// noAddressName is the display fallback when a candidate has no road address.
const noAddressName = "주소 정보 없음"

type GeocodeClient struct {
	base    string
	hc      *http.Client
	keyID   string
	key     string
	decoder geo.Decoder
}

func NewGeocode(base, keyID, key string) (*GeocodeClient, error) {
	if keyID == "" || key == "" {
		return nil, fmt.Errorf("naver: ncp api key id and key are required")
	}
	if base == "" {
		base = defaultGeocodeBase
	}
	return &GeocodeClient{
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
		keyID:   keyID,
		key:     key,
		decoder: geo.NewDecimal(),
	}, nil
}

type geocodeResponse struct {
	Status    string             `json:"status"`
	Addresses []geocodeCandidate `json:"addresses"`
}

type geocodeCandidate struct {
	RoadAddress  string `json:"roadAddress"`
	JibunAddress string `json:"jibunAddress"`
	X            string `json:"x"` // longitude, decimal degrees
	Y            string `json:"y"` // latitude, decimal degrees
}

// Geocode resolves an address-like query. At most one place is produced,
// from the first candidate; a non-OK status or empty candidate list is a
// clean "no results".
func (c *GeocodeClient) Geocode(ctx context.Context, query string) ([]domain.Place, error) {
	q := url.Values{}
	q.Set("query", query)

	u := c.base + "/map-geocode/v2/geocode?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-ncp-apigw-api-key-id", c.keyID)
	req.Header.Set("x-ncp-apigw-api-key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "smart-search/1.0")

	var body geocodeResponse
	if err := do(ctx, c.hc, req, "geocode", "/map-geocode/v2/geocode", &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" || len(body.Addresses) == 0 {
		return nil, nil
	}

	cand := body.Addresses[0]
	p := domain.Place{Name: cand.RoadAddress, Address: cand.JibunAddress}
	if p.Name == "" {
		p.Name = noAddressName
	}
	if lat, lon, ok := c.decoder.Decode(cand.X, cand.Y); ok {
		p.Coords = &domain.Coords{Lat: lat, Lon: lon}
	}
	return []domain.Place{p}, nil
}
