package price

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	require.Equal(t, 2500.0, Static(2500).EthUsd(context.Background()))
}

func TestHTTPFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ethereum":{"usd":3123.45}}`))
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, 2000)
	require.Equal(t, 3123.45, h.EthUsd(context.Background()))
}

func TestHTTPFallback(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{`))
		}},
		{"zero price", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ethereum":{"usd":0}}`))
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()
			h := NewHTTP(srv.URL, 2000)
			require.Equal(t, 2000.0, h.EthUsd(context.Background()))
		})
	}
}

func TestHTTPFallbackOnDialError(t *testing.T) {
	h := NewHTTP("http://127.0.0.1:1", 1800)
	require.Equal(t, 1800.0, h.EthUsd(context.Background()))
}
