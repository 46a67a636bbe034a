package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart_search/internal/shared"
)

func setAllCredentials(t *testing.T) {
	t.Setenv("TMAP_API_KEY", "tk")
	t.Setenv("NAVER_CLIENT_ID", "nid")
	t.Setenv("NAVER_CLIENT_SECRET", "nsec")
	t.Setenv("NCP_CLIENT_ID", "kid")
	t.Setenv("NCP_CLIENT_SECRET", "key")
}

func TestLoad_AllCredentialsPresent(t *testing.T) {
	setAllCredentials(t)

	cfg, err := shared.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "tk", cfg.TmapKey)
	assert.Equal(t, 10, cfg.POICount)
}

func TestLoad_MissingCredentialFailsStartup(t *testing.T) {
	setAllCredentials(t)
	t.Setenv("NCP_CLIENT_SECRET", "")

	_, err := shared.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NCP_CLIENT_SECRET")
}

func TestLoad_ReportsEveryMissingCredential(t *testing.T) {
	setAllCredentials(t)
	t.Setenv("TMAP_API_KEY", "")
	t.Setenv("NAVER_CLIENT_ID", "")

	_, err := shared.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMAP_API_KEY")
	assert.Contains(t, err.Error(), "NAVER_CLIENT_ID")
}
