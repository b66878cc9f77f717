package gateway

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
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key_id", user)
			assert.Equal(t, "key_secret", pass)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, float64(99900), payload["amount"])
			assert.Equal(t, "INR", payload["currency"])
			assert.Equal(t, "rcpt_1", payload["receipt"])

			json.NewEncoder(w).Encode(map[string]any{
				"id": "order_xyz", "amount": 99900, "currency": "INR", "receipt": "rcpt_1", "status": "created",
			})
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), srv.URL, "key_id", "key_secret", "hook_secret")
		order, err := c.CreateOrder(context.Background(), 99900, "INR", "rcpt_1", map[string]string{"warehouse_id": "7"})
		require.NoError(t, err)
		assert.Equal(t, "order_xyz", order.ID)
		assert.Equal(t, int64(99900), order.AmountCents)
	})

	t.Run("Gateway Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad auth", http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), srv.URL, "key_id", "key_secret", "hook_secret")
		_, err := c.CreateOrder(context.Background(), 99900, "INR", "rcpt_1", nil)
		assert.Error(t, err)
	})

	t.Run("Empty Order ID Rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"status": "created"})
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), srv.URL, "key_id", "key_secret", "hook_secret")
		_, err := c.CreateOrder(context.Background(), 99900, "INR", "rcpt_1", nil)
		assert.Error(t, err)
	})
}

func TestClient_FetchPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/pay_1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "pay_1", "order_id": "order_xyz", "status": "captured", "method": "upi",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "key_id", "key_secret", "hook_secret")
	details, err := c.FetchPayment(context.Background(), "pay_1")
	require.NoError(t, err)
	assert.Equal(t, "pay_1", details.ID)
	assert.Equal(t, "upi", details.Method)
	// Raw keeps the exact gateway payload for the audit column.
	assert.JSONEq(t, `{"id":"pay_1","order_id":"order_xyz","status":"captured","method":"upi"}`, string(details.Raw))
}
