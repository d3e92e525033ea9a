package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/internal/ledger"
	"guardian/pkg/testutil"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	l := ledger.New(ledger.DefaultRoster(now), ledger.DefaultBalance(), ledger.DefaultSaved())
	r := chi.NewRouter()
	New(l).Register(r)
	return r
}

func TestHandleSubscriptions(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(t), testutil.NewRequest(t, http.MethodGet, "/subscriptions"))

	testutil.AssertStatusOK(t, rr)
	resp := testutil.UnmarshalResponse[SubscriptionsResponse](t, rr)
	require.Len(t, resp.Subscriptions, 4)

	netflix := resp.Subscriptions[0]
	assert.Equal(t, "Netflix", netflix.Name)
	assert.Equal(t, "19.99", netflix.Amount)
	assert.Equal(t, "monthly", netflix.Frequency)
	assert.Equal(t, "active", netflix.Status)

	midjourney := resp.Subscriptions[3]
	assert.Equal(t, "Midjourney", midjourney.Name)
	assert.Equal(t, "paused", midjourney.Status)
}

func TestHandleStats(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(t), testutil.NewRequest(t, http.MethodGet, "/wallet/stats"))

	testutil.AssertStatusOK(t, rr)
	resp := testutil.UnmarshalResponse[StatsResponse](t, rr)
	assert.Equal(t, "4250.75", resp.Balance)
	assert.Equal(t, "74.98", resp.TotalMonthlySpent)
	assert.Equal(t, 3, resp.ActiveSubscriptions)
	assert.Equal(t, "30.00", resp.SavedThisMonth)
}
