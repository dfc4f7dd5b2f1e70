package multpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shiller-pe", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Write([]byte(`<html><body>
			<div id="current-value"> 38.12 </div>
		</body></html>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	val, err := client.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 38.12, val)
}

func TestCurrentRegexFallback(t *testing.T) {
	// Markup drift case: the value node sits inside a comment, invisible to
	// the selector but still present in the raw body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<!-- <span id="current-value">38.40</span> -->
		</body></html>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	val, err := client.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 38.40, val)
}

func TestCurrentValueMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>Shiller PE Ratio</h1></body></html>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Current(context.Background())
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shiller-pe/table/by-month", r.URL.Path)

		w.Write([]byte(`<html><body><table id="datatable">
			<tr><th>Date</th><th>Value</th></tr>
			<tr><td>Aug 1, 2026</td><td>37.95 </td></tr>
			<tr><td>Jul 1, 2026</td><td>37.60</td></tr>
		</table></body></html>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	val, err := client.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 37.95, val)
}
