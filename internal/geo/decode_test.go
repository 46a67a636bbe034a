package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart_search/internal/geo"
)

func TestFixedPoint_DecodesScaledIntegers(t *testing.T) {
	d := geo.NewFixedPoint7()

	lat, lon, ok := d.Decode("1270594000", "375678000")
	require.True(t, ok)
	assert.InDelta(t, 37.5678, lat, 1e-9)
	assert.InDelta(t, 127.0594, lon, 1e-9)
}

func TestFixedPoint_RejectsOutOfBox(t *testing.T) {
	d := geo.NewFixedPoint7()

	cases := map[string]struct{ x, y string }{
		"south of box": {"1270000000", "320000000"},
		"north of box": {"1270000000", "440000000"},
		"west of box":  {"1200000000", "375000000"},
		"east of box":  {"1350000000", "375000000"},
		"zero pair":    {"0", "0"},
		"on lat edge":  {"1270000000", "330000000"},
		"on lon edge":  {"1240000000", "375000000"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, ok := d.Decode(c.x, c.y)
			assert.False(t, ok)
		})
	}
}

func TestFixedPoint_RejectsUnparseable(t *testing.T) {
	d := geo.NewFixedPoint7()

	cases := map[string]struct{ x, y string }{
		"both empty":    {"", ""},
		"x empty":       {"", "375678000"},
		"y empty":       {"1270594000", ""},
		"x non-numeric": {"abc", "375678000"},
		"y non-numeric": {"1270594000", "37.56.78"},
		"whitespace":    {"  ", "375678000"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, ok := d.Decode(c.x, c.y)
			assert.False(t, ok)
		})
	}
}

func TestDecimal_PassesThroughGeodeticValues(t *testing.T) {
	d := geo.NewDecimal()

	lat, lon, ok := d.Decode("127.1054065", "37.3595963")
	require.True(t, ok)
	assert.InDelta(t, 37.3595963, lat, 1e-9)
	assert.InDelta(t, 127.1054065, lon, 1e-9)
}

func TestDecimal_RejectsInvalid(t *testing.T) {
	d := geo.NewDecimal()

	_, _, ok := d.Decode("", "37.5")
	assert.False(t, ok)

	_, _, ok = d.Decode("127.0", "51.5") // London latitude: out of box
	assert.False(t, ok)
}

func TestBox_ContainsIsExclusive(t *testing.T) {
	b := geo.KoreaBox

	assert.True(t, b.Contains(37.5678, 127.0594))
	assert.False(t, b.Contains(33, 127))
	assert.False(t, b.Contains(43, 127))
	assert.False(t, b.Contains(37, 124))
	assert.False(t, b.Contains(37, 132))
}
