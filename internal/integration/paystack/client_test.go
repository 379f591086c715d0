package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_InitializeTransaction(t *testing.T) {
	t.Parallel()

	t.Run("posts the request and unwraps the envelope", func(t *testing.T) {
		t.Parallel()
		var gotAuth, gotPath string
		var gotBody InitializeRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Authorization URL created",
				"data": {
					"authorization_url": "https://checkout.paystack.com/xyz",
					"access_code": "ac_1",
					"reference": "ref_abc"
				}
			}`))
		}))
		defer server.Close()

		client := NewClient(Config{SecretKey: "sk_test_123", BaseURL: server.URL})
		data, err := client.InitializeTransaction(context.Background(), InitializeRequest{
			Email:    "e@x.com",
			Amount:   9900,
			Currency: "GHS",
			Metadata: TransactionMetadata{UserID: "u1", PlanID: "p1"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Bearer sk_test_123", gotAuth)
		assert.Equal(t, "/transaction/initialize", gotPath)
		assert.Equal(t, int64(9900), gotBody.Amount)
		assert.Equal(t, "u1", gotBody.Metadata.UserID)

		assert.Equal(t, "https://checkout.paystack.com/xyz", data.AuthorizationURL)
		assert.Equal(t, "ref_abc", data.Reference)
	})

	t.Run("treats an envelope with status false as an error", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
		}))
		defer server.Close()

		client := NewClient(Config{SecretKey: "sk_bad", BaseURL: server.URL})
		_, err := client.InitializeTransaction(context.Background(), InitializeRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid key")
	})

	t.Run("treats a non-2xx response as an error", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status": true, "message": "nope"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.InitializeTransaction(context.Background(), InitializeRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http 401")
	})
}

func TestClient_VerifyTransaction(t *testing.T) {
	t.Parallel()

	t.Run("fetches by reference and decodes metadata", func(t *testing.T) {
		t.Parallel()
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {
					"status": "success",
					"reference": "ref_abc",
					"amount": 9900,
					"currency": "GHS",
					"channel": "card",
					"metadata": {"user_id": "u1", "plan_id": "p1"}
				}
			}`))
		}))
		defer server.Close()

		client := NewClient(Config{SecretKey: "sk_test_123", BaseURL: server.URL})
		data, err := client.VerifyTransaction(context.Background(), "ref_abc")
		require.NoError(t, err)

		assert.Equal(t, "/transaction/verify/ref_abc", gotPath)
		assert.Equal(t, "success", data.Status)
		assert.Equal(t, int64(9900), data.Amount)
		assert.Equal(t, "p1", data.Metadata.PlanID)
	})

	t.Run("fails on a body that is not the envelope", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.VerifyTransaction(context.Background(), "ref_abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding response")
	})
}
