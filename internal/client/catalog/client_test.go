package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
)

const testSkinUUID = "7f4f6d2a-0b3c-4d5e-9a1b-2c3d4e5f6a7b"

func TestFetchSkinLevel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/weapons/skinlevels/"+testSkinUUID, r.URL.Path)
		assert.Equal(t, "ja-JP", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": 200,
			"data": {
				"uuid": "` + testSkinUUID + `",
				"displayName": "リコン ファントム",
				"displayIcon": "https://media.valorant-api.com/icon.png",
				"streamedVideo": "https://media.valorant-api.com/video.mp4"
			}
		}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(&config.Config{CatalogBaseURL: server.URL})

	skin, err := client.FetchSkinLevel(context.Background(), testSkinUUID, "ja-JP")
	require.NoError(t, err)

	assert.Equal(t, testSkinUUID, skin.UUID)
	assert.Equal(t, "リコン ファントム", skin.DisplayName)
	assert.Equal(t, "https://media.valorant-api.com/icon.png", skin.DisplayIcon)
	assert.Equal(t, "https://media.valorant-api.com/video.mp4", skin.StreamedVideo)
}

func TestFetchSkinLevel_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"status": 404}`, http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := NewClient(&config.Config{CatalogBaseURL: server.URL})

	_, err := client.FetchSkinLevel(context.Background(), testSkinUUID, "en-US")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}
