package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineLoad_FromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Region,Sales\nWest,\"Rp 1.200.000\"\nEast,90\n"))
	}))
	defer srv.Close()

	p := NewPipeline(NewHTTPFetcher(2 * time.Second))
	tbl, err := p.Load(context.Background(), srv.URL+"/data.csv")
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, 1200000.0, tbl.Rows[0]["Sales"])
	assert.Equal(t, 90.0, tbl.Rows[1]["Sales"])
}

func TestPipelineRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Region,Sales\nWest,120\nEast,90\n"))
	}))
	defer srv.Close()

	p := NewPipeline(NewHTTPFetcher(2 * time.Second))
	def, err := p.Render(context.Background(), ChartBar, srv.URL, AxisConfig{})
	require.NoError(t, err)

	assert.Equal(t, "Region", def.XKey)
	assert.Equal(t, []string{"Sales"}, def.YKeys)
	require.Len(t, def.Points, 2)
	assert.Equal(t, "West", def.Points[0].X)
	assert.Equal(t, "120", def.Points[0].Labels["Sales"])
}

func TestHTTPFetcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"private sheet login page", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("<!DOCTYPE html><html><body>Sign in</body></html>"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPFetcher(time.Second).Fetch(context.Background(), srv.URL)
			assert.ErrorIs(t, err, ErrFetch)
		})
	}
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(time.Second).Fetch(context.Background(), url)
	assert.ErrorIs(t, err, ErrFetch)
}
