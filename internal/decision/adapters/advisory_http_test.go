package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryClient_Assess(t *testing.T) {
	var gotBody assessRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/assess", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"risk": "low",
			"note": "Established merchant.",
		})
	}))
	defer srv.Close()

	client := NewAdvisoryClient(srv.URL, time.Second, nil)
	advice, err := client.Assess(context.Background(), "Netflix", decimal.RequireFromString("19.99"))
	require.NoError(t, err)
	assert.Equal(t, "low", advice.Risk)
	assert.Equal(t, "Established merchant.", advice.Note)
	assert.Equal(t, "Netflix", gotBody.MerchantName)
	assert.Equal(t, "19.99", gotBody.Amount)
}

func TestAdvisoryClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewAdvisoryClient(srv.URL, time.Second, nil)
	advice, err := client.Assess(context.Background(), "Netflix", decimal.NewFromInt(10))
	assert.Nil(t, advice)
	assert.Error(t, err)
}

func TestAdvisoryClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewAdvisoryClient(srv.URL, time.Second, nil)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := client.Assess(ctx, "Netflix", decimal.NewFromInt(10))
		require.Error(t, err)
	}

	// The breaker is open now; the request never reaches the server.
	srv.Close()
	_, err := client.Assess(ctx, "Netflix", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit open")
}
