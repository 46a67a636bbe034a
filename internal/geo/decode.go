// Package geo converts provider-specific raw coordinate encodings into
// geodetic WGS84 and applies a coarse plausibility filter. Providers have
// changed encodings over time (projected TM grids, fixed-point integers,
// plain decimal strings), so decoding is a capability interface with one
// implementation per encoding.
package geo

import (
	"strconv"
	"strings"
)

// Box is a rectangular latitude/longitude plausibility filter. Bounds are
// exclusive: a point on the edge is rejected.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// KoreaBox covers the Korean peninsula. It is a sanity filter against
// obviously wrong decodes, not a geodesic boundary.
var KoreaBox = Box{MinLat: 33, MaxLat: 43, MinLon: 124, MaxLon: 132}

func (b Box) Contains(lat, lon float64) bool {
	return lat > b.MinLat && lat < b.MaxLat && lon > b.MinLon && lon < b.MaxLon
}

// Decoder turns a provider's raw x/y pair into (lat, lon). ok is false when
// either value is absent, unparseable, or the decoded point falls outside
// the decoder's box — an invalid coordinate is a filtering decision, never
// an error.
type Decoder interface {
	Decode(rawX, rawY string) (lat, lon float64, ok bool)
}

// FixedPoint decodes integer values scaled by a fixed divisor
// (e.g. 1270594000 / 1e7 = 127.0594).
type FixedPoint struct {
	Scale float64
	Box   Box
}

// NewFixedPoint7 returns the decoder for the 10^7 fixed-point encoding used
// by the Naver local search mapx/mapy fields, validated against KoreaBox.
func NewFixedPoint7() FixedPoint {
	return FixedPoint{Scale: 1e7, Box: KoreaBox}
}

func (d FixedPoint) Decode(rawX, rawY string) (float64, float64, bool) {
	x, okX := parse(rawX)
	y, okY := parse(rawY)
	if !okX || !okY {
		return 0, 0, false
	}
	lat, lon := y/d.Scale, x/d.Scale
	if !d.Box.Contains(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// Decimal passes through values already in decimal degrees (Tmap
// frontLat/frontLon, NCP geocode y/x), still applying the box filter.
type Decimal struct {
	Box Box
}

// NewDecimal returns the pass-through decoder validated against KoreaBox.
func NewDecimal() Decimal { return Decimal{Box: KoreaBox} }

func (d Decimal) Decode(rawX, rawY string) (float64, float64, bool) {
	lon, okX := parse(rawX)
	lat, okY := parse(rawY)
	if !okX || !okY {
		return 0, 0, false
	}
	if !d.Box.Contains(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

func parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
