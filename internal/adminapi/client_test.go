package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushOverride(t *testing.T) {
	t.Run("sends the item and decodes the result", func(t *testing.T) {
		var received OverrideItem
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/sync/overrides", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(PushResult{Created: true})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", 5*time.Second)
		result, err := client.PushOverride(context.Background(), OverrideItem{
			Key:        "firebat",
			FixedBits1: 32,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, "firebat", received.Key)
		assert.Equal(t, int64(32), received.FixedBits1)
	})

	t.Run("maps 401 to invalid API key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewClient(server.URL, "wrong", 0)
		_, err := client.PushOverride(context.Background(), OverrideItem{Key: "k"})
		assert.ErrorIs(t, err, ErrInvalidAPIKey)
	})

	t.Run("maps 5xx to a server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, "", 0)
		_, err := client.PushOverride(context.Background(), OverrideItem{Key: "k"})
		var serverErr *ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "", time.Second)
		_, err := client.PushOverride(context.Background(), OverrideItem{Key: "k"})
		assert.ErrorIs(t, err, ErrUnreachable)
	})
}

func TestPullOverrides(t *testing.T) {
	t.Run("decodes the full record list", func(t *testing.T) {
		note := "manual fix"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			json.NewEncoder(w).Encode([]OverrideItem{
				{Key: "a", FixedBits1: 1},
				{Key: "b", FixedBits2: 2, Note: &note},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "", 0)
		items, err := client.PullOverrides(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].Key)
		assert.Equal(t, "manual fix", *items[1].Note)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "", time.Second)
		_, err := client.PullOverrides(context.Background())
		assert.ErrorIs(t, err, ErrUnreachable)
	})
}

func TestPing(t *testing.T) {
	t.Run("healthy backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/sync/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, "", 0)
		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "", time.Second)
		assert.ErrorIs(t, client.Ping(context.Background()), ErrUnreachable)
	})
}
