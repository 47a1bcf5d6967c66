package riot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ClientImpl, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	headers := http.Header{}
	headers.Set(headerAuthorization, "Bearer TEST.TOKEN")
	headers.Set(headerEntitlementsJWT, "TEST.JWT")
	headers.Set(headerClientPlatform, clientPlatform)

	client, err := newClient(&config.Config{PlayerDataBaseURL: server.URL}, testPUUID, headers)
	require.NoError(t, err)

	return client, server
}

// TestClient_FetchPlayerNames tests the name service call.
func TestClient_FetchPlayerNames(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/name-service/v2/players", r.URL.Path)
		assert.Equal(t, "Bearer TEST.TOKEN", r.Header.Get("Authorization"))
		assert.Equal(t, "TEST.JWT", r.Header.Get("X-Riot-Entitlements-JWT"))

		var puuids []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&puuids))
		assert.Equal(t, []string{testPUUID}, puuids)

		_ = json.NewEncoder(w).Encode([]PlayerName{
			{Subject: testPUUID, GameName: "SomePlayer", TagLine: "JP1"},
		})
	})

	names, err := client.FetchPlayerNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "SomePlayer", names[0].GameName)
	assert.Equal(t, "JP1", names[0].TagLine)
}

// TestClient_FetchStorefront tests the storefront call.
func TestClient_FetchStorefront(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/store/v2/storefront/"+testPUUID, r.URL.Path)

		_ = json.NewEncoder(w).Encode(Storefront{
			SkinsPanelLayout: SkinsPanelLayout{
				SingleItemOffers: []string{"offer-1", "offer-2", "offer-3", "offer-4"},
			},
		})
	})

	storefront, err := client.FetchStorefront(context.Background())
	require.NoError(t, err)
	assert.Len(t, storefront.SkinsPanelLayout.SingleItemOffers, 4)
}

// TestClient_FetchCompetitiveUpdates tests the competitive updates call.
func TestClient_FetchCompetitiveUpdates(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/mmr/player/"+testPUUID+"/competitiveupdates", r.URL.Path)

		_ = json.NewEncoder(w).Encode(CompetitiveUpdates{
			Matches: []CompetitiveMatch{{TierAfterUpdate: 13}},
		})
	})

	updates, err := client.FetchCompetitiveUpdates(context.Background())
	require.NoError(t, err)
	require.Len(t, updates.Matches, 1)

	tierName, err := CompetitiveTierName(updates.Matches[0].TierAfterUpdate)
	require.NoError(t, err)
	assert.Equal(t, "GOLD 2", tierName)
}

// TestClient_UnexpectedStatus tests the non-200 error path.
func TestClient_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.FetchStorefront(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}
