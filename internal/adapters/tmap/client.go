// Package tmap wraps the Tmap POI keyword search endpoint.
package tmap

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

const defaultBase = "https://apis.openapi.sk.com"

type Client struct {
	base    string
	hc      *http.Client
	appKey  string
	decoder geo.Decoder
}

func New(base, appKey string) (*Client, error) {
	if appKey == "" {
		return nil, fmt.Errorf("tmap: app key is required")
	}
	if base == "" {
		base = defaultBase
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
		appKey:  appKey,
		decoder: geo.NewDecimal(),
	}, nil
}

// poiResponse mirrors the subset of the Tmap response we consume.
// frontLat/frontLon arrive as strings even though they are decimal degrees.
type poiResponse struct {
	SearchPOIInfo struct {
		TotalCount string `json:"totalCount"`
		POIs       struct {
			POI []poiItem `json:"poi"`
		} `json:"pois"`
	} `json:"searchPoiInfo"`
}

type poiItem struct {
	Name           string `json:"name"`
	FrontLat       string `json:"frontLat"`
	FrontLon       string `json:"frontLon"`
	NewAddressList struct {
		NewAddress []struct {
			FullAddressRoad string `json:"fullAddressRoad"`
		} `json:"newAddress"`
	} `json:"newAddressList"`
}

// SearchPOI issues one keyword search and returns places in the provider's
// order. An empty slice means the provider reported zero matches; a non-nil
// error means the call itself failed.
func (c *Client) SearchPOI(ctx context.Context, keyword string, count int) ([]domain.Place, error) {
	q := url.Values{}
	q.Set("version", "1")
	q.Set("searchKeyword", keyword)
	q.Set("count", strconv.Itoa(count))
	q.Set("searchtypCd", "A")
	q.Set("resCoordType", "WGS84GEO")

	var body poiResponse
	if err := c.get(ctx, c.base+"/tmap/pois?"+q.Encode(), "/tmap/pois", &body); err != nil {
		return nil, err
	}

	info := body.SearchPOIInfo
	if info.TotalCount == "" || info.TotalCount == "0" {
		return nil, nil
	}

	places := make([]domain.Place, 0, len(info.POIs.POI))
	for _, it := range info.POIs.POI {
		p := domain.Place{Name: it.Name, Address: firstRoadAddress(it)}
		// x = lon, y = lat; a failed decode leaves the record without
		// coordinates rather than dropping it from the table.
		if lat, lon, ok := c.decoder.Decode(it.FrontLon, it.FrontLat); ok {
			p.Coords = &domain.Coords{Lat: lat, Lon: lon}
		}
		places = append(places, p)
	}
	return places, nil
}

func firstRoadAddress(it poiItem) string {
	if list := it.NewAddressList.NewAddress; len(list) > 0 {
		return list[0].FullAddressRoad
	}
	return ""
}

func (c *Client) get(ctx context.Context, u, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("appKey", c.appKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "smart-search/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("tmap", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tmap: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("tmap", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("tmap: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmap: decode response: %w", err)
	}
	return nil
}
