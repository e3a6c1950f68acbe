package estimate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func fakeDistanceServer(t *testing.T, milesText string, calls *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		resp := map[string]any{
			"status": "OK",
			"rows": []map[string]any{
				{"elements": []map[string]any{
					{"status": "OK", "distance": map[string]any{"text": milesText}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(t *testing.T, server *httptest.Server) *DistanceClient {
	t.Helper()
	client, err := NewDistanceClient("test-key", NewMemoryDistanceCache(), maps.WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestParseMilesText(t *testing.T) {
	miles, err := parseMilesText("1,234.5 mi")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, miles)

	miles, err = parseMilesText("12 mi")
	require.NoError(t, err)
	assert.Equal(t, 12.0, miles)

	_, err = parseMilesText("")
	assert.Error(t, err)

	_, err = parseMilesText("far away")
	assert.Error(t, err)
}

func TestMilesUsesCache(t *testing.T) {
	calls := 0
	server := fakeDistanceServer(t, "25.4 mi", &calls)
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	miles, err := client.Miles(ctx, "100 Main St, Houston, TX", "200 Oak Ave, Houston, TX")
	require.NoError(t, err)
	assert.Equal(t, 25.4, miles)
	assert.Equal(t, 1, calls)

	// Second lookup with different casing hits the cache.
	miles, err = client.Miles(ctx, "100 MAIN ST, Houston, TX ", "200 Oak Ave, Houston, TX")
	require.NoError(t, err)
	assert.Equal(t, 25.4, miles)
	assert.Equal(t, 1, calls)
}

func TestTotalRouteMilesRounding(t *testing.T) {
	calls := 0
	server := fakeDistanceServer(t, "10.25 mi", &calls)
	defer server.Close()

	client := newTestClient(t, server)
	total, err := client.TotalRouteMiles(context.Background(), "office", "pickup", "drop")
	require.NoError(t, err)
	// Three legs of 10.25 each, rounded to one decimal.
	assert.Equal(t, 30.8, total)
	assert.Equal(t, 3, calls)
}

func TestMilesElementNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"rows": []map[string]any{
				{"elements": []map[string]any{
					{"status": "NOT_FOUND", "distance": map[string]any{"text": ""}},
				}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Miles(context.Background(), "nowhere", "anywhere")
	assert.Error(t, err)
}
