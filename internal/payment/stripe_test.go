package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(server *httptest.Server) *stripeGateway {
	return &stripeGateway{
		apiKey:     "sk_test_123",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestStripeGateway_CreateIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2110", r.PostForm.Get("amount"))
		assert.Equal(t, "inr", r.PostForm.Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "pi_123",
			"client_secret": "pi_123_secret_abc",
			"status": "requires_payment_method",
			"amount": 2110,
			"currency": "inr"
		}`))
	}))
	defer server.Close()

	intent, err := newTestGateway(server).CreateIntent(context.Background(), 2110)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(2110), intent.Amount)
}

func TestStripeGateway_CreateIntent_InvalidAmount(t *testing.T) {
	gw := NewStripeGateway("sk_test_123")

	_, err := gw.CreateIntent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = gw.CreateIntent(context.Background(), -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestStripeGateway_CreateIntent_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	_, err := newTestGateway(server).CreateIntent(context.Background(), 100)
	require.ErrorIs(t, err, ErrProvider)
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestStripeGateway_RetrieveIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":2110,"currency":"inr"}`))
	}))
	defer server.Close()

	intent, err := newTestGateway(server).RetrieveIntent(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, IntentStatusSucceeded, intent.Status)
}

func TestStripeGateway_RetrieveIntent_MissingID(t *testing.T) {
	gw := NewStripeGateway("sk_test_123")

	_, err := gw.RetrieveIntent(context.Background(), "")
	assert.ErrorIs(t, err, ErrProvider)
}

// Each CreateIntent call creates a new remote intent; the gateway offers no
// idempotency across retries of the same logical checkout.
func TestStripeGateway_CreateIntent_NotIdempotent(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"s","status":"requires_payment_method"}`))
	}))
	defer server.Close()

	gw := newTestGateway(server)
	_, err := gw.CreateIntent(context.Background(), 100)
	require.NoError(t, err)
	_, err = gw.CreateIntent(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}
