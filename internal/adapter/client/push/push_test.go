package push_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jibli-app/jibli-backend/internal/adapter/client/push"
	"github.com/jibli-app/jibli-backend/internal/adapter/config"
	"github.com/jibli-app/jibli-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *push.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	client, err := push.NewClient(&config.Push{HostString: host, APIKey: "test-key"}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClient_SendToRecipient(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var msg map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "tok-1", msg["token"])
		assert.Equal(t, "Nouvelle Commande", msg["title"])

		_ = json.NewEncoder(w).Encode(map[string]string{"message_id": "m-1"})
	})

	ok := client.SendToRecipient(context.Background(),
		domain.Recipient{UserID: 1, DeviceToken: "tok-1"},
		"Nouvelle Commande", "Commande #1", map[string]string{"route": "/orders"})
	assert.True(t, ok)
}

func TestClient_ProviderErrorReturnsFalse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	ok := client.SendToRecipient(context.Background(),
		domain.Recipient{UserID: 1, DeviceToken: "tok-1"},
		"title", "body", nil)
	assert.False(t, ok)
}

func TestClient_NoDeviceTokenReturnsFalse(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ok := client.SendToRecipient(context.Background(),
		domain.Recipient{UserID: 1}, "title", "body", nil)
	assert.False(t, ok)
	assert.False(t, called)
}
