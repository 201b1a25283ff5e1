package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Run("200 OK", func(t *testing.T) {
		var gotMethod string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			_, _ = w.Write([]byte(`[{"id":1}]`))
		}))
		defer ts.Close()

		body, err := Fetch(context.Background(), ts.Client(), ts.URL+"/products.json")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(body))
		assert.Equal(t, http.MethodGet, gotMethod)
	})

	t.Run("non-200 includes status and body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("no such catalog"))
		}))
		defer ts.Close()

		_, err := Fetch(context.Background(), nil, ts.URL)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "404"))
		assert.Contains(t, err.Error(), "no such catalog")
	})

	t.Run("context deadline", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := Fetch(ctx, ts.Client(), ts.URL)
		require.Error(t, err)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := Fetch(context.Background(), nil, "://nope")
		require.Error(t, err)
	})
}
