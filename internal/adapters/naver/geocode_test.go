package naver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart_search/internal/adapters/naver"
)

const geocodeBody = `{
  "status": "OK",
  "addresses": [
    {"roadAddress": "서울특별시 중구 세종대로 110", "jibunAddress": "서울특별시 중구 태평로1가 31", "x": "126.9779451", "y": "37.5663245"},
    {"roadAddress": "다른 후보", "jibunAddress": "무시됨", "x": "127.0", "y": "37.0"}
  ]
}`

func TestGeocode_FirstCandidateOnly(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/map-geocode/v2/geocode" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-ncp-apigw-api-key-id") != "kid" || r.Header.Get("x-ncp-apigw-api-key") != "key" {
			t.Errorf("missing api key headers")
		}
		if r.URL.Query().Get("query") != "세종대로 110" {
			t.Errorf("unexpected query %q", r.URL.Query().Get("query"))
		}
		_, _ = w.Write([]byte(geocodeBody))
	}))
	defer ts.Close()

	cl, err := naver.NewGeocode(ts.URL, "kid", "key")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	places, err := cl.Geocode(context.Background(), "세종대로 110")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("expected exactly one place, got %d", len(places))
	}
	p := places[0]
	if p.Name != "서울특별시 중구 세종대로 110" || p.Address != "서울특별시 중구 태평로1가 31" {
		t.Fatalf("unexpected place: %+v", p)
	}
	if p.Coords == nil || p.Coords.Lat != 37.5663245 || p.Coords.Lon != 126.9779451 {
		t.Fatalf("unexpected coords: %+v", p.Coords)
	}
}

func TestGeocode_RoadAddressFallbackName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","addresses":[{"roadAddress":"","jibunAddress":"지번만","x":"127.0","y":"37.5"}]}`))
	}))
	defer ts.Close()

	cl, _ := naver.NewGeocode(ts.URL, "kid", "key")
	places, err := cl.Geocode(context.Background(), "지번만")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(places) != 1 || places[0].Name != "주소 정보 없음" {
		t.Fatalf("expected fallback name, got %+v", places)
	}
}

func TestGeocode_NonOKStatusIsNoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"INVALID_REQUEST","addresses":[]}`))
	}))
	defer ts.Close()

	cl, _ := naver.NewGeocode(ts.URL, "kid", "key")
	places, err := cl.Geocode(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("expected no places, got %d", len(places))
	}
}

func TestGeocode_ServerErrorIsFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	cl, _ := naver.NewGeocode(ts.URL, "kid", "key")
	if _, err := cl.Geocode(context.Background(), "q"); err == nil {
		t.Fatalf("expected error for 502")
	}
}

func TestNewGeocode_RequiresCredentials(t *testing.T) {
	if _, err := naver.NewGeocode("http://example.invalid", "", "key"); err == nil {
		t.Fatalf("expected error for empty key id")
	}
	if _, err := naver.NewGeocode("http://example.invalid", "kid", ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
