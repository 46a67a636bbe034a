package shared

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	TmapBase string
	TmapKey  string

	NaverBase         string
	NaverClientID     string
	NaverClientSecret string

	NCPBase  string
	NCPKeyID string
	NCPKey   string

	POICount int
}

// Load reads configuration from the environment. The five provider
// credentials are required: a missing one is a fatal configuration error and
// the caller must not start serving.
func Load() (Config, error) {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:            env("APP_ENV", "prod"),
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		MetricsAddr:       env("METRICS_ADDR", ""),
		TmapBase:          env("TMAP_BASE_URL", "https://apis.openapi.sk.com"),
		TmapKey:           os.Getenv("TMAP_API_KEY"),
		NaverBase:         env("NAVER_BASE_URL", "https://openapi.naver.com"),
		NaverClientID:     os.Getenv("NAVER_CLIENT_ID"),
		NaverClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
		NCPBase:           env("NCP_BASE_URL", "https://maps.apigw.ntruss.com"),
		NCPKeyID:          os.Getenv("NCP_CLIENT_ID"),
		NCPKey:            os.Getenv("NCP_CLIENT_SECRET"),
		POICount:          atoi("TMAP_POI_COUNT", 10),
	}

	var missing []string
	for k, v := range map[string]string{
		"TMAP_API_KEY":        c.TmapKey,
		"NAVER_CLIENT_ID":     c.NaverClientID,
		"NAVER_CLIENT_SECRET": c.NaverClientSecret,
		"NCP_CLIENT_ID":       c.NCPKeyID,
		"NCP_CLIENT_SECRET":   c.NCPKey,
	} {
		if v == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing) // map iteration order is random; keep the message stable
		return Config{}, fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}
	return c, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
