package fred

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetObservations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fred/series/observations", r.URL.Path)
		assert.Equal(t, "FEDFUNDS", r.URL.Query().Get("series_id"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, "desc", r.URL.Query().Get("sort_order"))
		assert.Equal(t, "json", r.URL.Query().Get("file_type"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"observations":[
			{"date":"2026-08-01","value":"."},
			{"date":"2026-07-01","value":"4.33"},
			{"date":"2026-06-01","value":"4.58"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "test-key", BaseURL: server.URL})

	obs, err := client.GetObservations(context.Background(), "FEDFUNDS", 3)
	require.NoError(t, err)
	require.Len(t, obs, 3)

	// The missing-value sentinel is passed through raw; filtering is the
	// caller's job.
	assert.Equal(t, ".", obs[0].Value)
	assert.Equal(t, "4.33", obs[1].Value)
	assert.Equal(t, "2026-06-01", obs[2].Date)
}

func TestGetObservationsEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"observations":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GetObservations(context.Background(), "DGS10", 3)
	require.Error(t, err)
}

func TestGetObservationsMissingAPIKey(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.GetObservations(context.Background(), "FEDFUNDS", 3)
	require.ErrorIs(t, err, ErrMissingAPIKey)

	// Fail fast: no network call is made without credentials.
	assert.Equal(t, 0, requests)
}
