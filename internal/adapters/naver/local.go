// Package naver wraps the two Naver search surfaces used by the dashboard:
// the Open API local/business search and the NCP geocoding endpoint. The two
// carry separate credentials and response shapes.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smart_search/internal/adapters/observability"
	"smart_search/internal/domain"
	"smart_search/internal/geo"
)

const defaultLocalBase = "https://openapi.naver.com"

// sortTokens maps the domain sort selector to the provider's enum values.
var sortTokens = map[domain.SortMode]string{
	domain.SortRelevance: "random",
	domain.SortReviews:   "comment",
}

type LocalClient struct {
	base         string
	hc           *http.Client
	clientID     string
	clientSecret string
	decoder      geo.Decoder
}

func NewLocal(base, clientID, clientSecret string) (*LocalClient, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("naver: client id and secret are required")
	}
	if base == "" {
		base = defaultLocalBase
	}
	return &LocalClient{
		base:         strings.TrimRight(base, "/"),
		hc:           &http.Client{Timeout: 10 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		decoder:      geo.NewFixedPoint7(),
	}, nil
}

type localResponse struct {
	Total int         `json:"total"`
	Items []localItem `json:"items"`
}

type localItem struct {
	Title       string `json:"title"`
	RoadAddress string `json:"roadAddress"`
	MapX        string `json:"mapx"`
	MapY        string `json:"mapy"`
}

// SearchLocal issues one business-name search. Items whose fixed-point
// coordinates fail to decode are discarded. display is clamped to the
// provider's accepted 1..5 range.
func (c *LocalClient) SearchLocal(ctx context.Context, keyword string, display int, sort domain.SortMode) ([]domain.Place, error) {
	if display < 1 {
		display = 1
	}
	if display > 5 {
		display = 5
	}
	token, ok := sortTokens[sort]
	if !ok {
		token = sortTokens[domain.SortRelevance]
	}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("display", strconv.Itoa(display))
	q.Set("sort", token)

	u := c.base + "/v1/search/local.json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "smart-search/1.0")

	var body localResponse
	if err := do(ctx, c.hc, req, "local", "/v1/search/local.json", &body); err != nil {
		return nil, err
	}
	if body.Total == 0 || len(body.Items) == 0 {
		return nil, nil
	}

	places := make([]domain.Place, 0, len(body.Items))
	for _, it := range body.Items {
		lat, lon, ok := c.decoder.Decode(it.MapX, it.MapY)
		if !ok {
			continue
		}
		places = append(places, domain.Place{
			Name:    stripEmphasis(it.Title),
			Address: it.RoadAddress,
			Coords:  &domain.Coords{Lat: lat, Lon: lon},
		})
	}
	return places, nil
}

// stripEmphasis removes the <b>…</b> markup the search API embeds around
// matched terms in titles.
func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "<b>", "")
	return strings.ReplaceAll(s, "</b>", "")
}

// do runs one request against a Naver surface, records outbound metrics, and
// decodes the JSON body. No retries: a single failed attempt is final.
func do(ctx context.Context, hc *http.Client, req *http.Request, service, endpoint string, out any) error {
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("naver %s: %w", service, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("naver %s: bad status %d: %s", service, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("naver %s: decode response: %w", service, err)
	}
	return nil
}
