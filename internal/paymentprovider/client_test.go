package paymentprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(49900), req.Amount)
		assert.Equal(t, "INR", req.Currency)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(CreateOrderResponse{
			ID:       "order_abc123",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := NewClient("key_id", "key_secret")
	client.apiURL = server.URL

	resp, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		Amount:   49900,
		Currency: "INR",
		Receipt:  "receipt_test",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_abc123", resp.ID)
	assert.Equal(t, "created", resp.Status)
}

func TestClient_CreateOrder_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient("key_id", "key_secret")
	client.apiURL = server.URL

	_, err := client.CreateOrder(context.Background(), CreateOrderRequest{Amount: 100, Currency: "INR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
