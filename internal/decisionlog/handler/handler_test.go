package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/internal/decision"
	"guardian/internal/decisionlog"
	"guardian/pkg/testutil"
)

func seededStore(t *testing.T) *decisionlog.InMemoryStore {
	t.Helper()
	store := decisionlog.NewInMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, decision.Decision{
		ID:           "d1",
		MerchantName: "StreamFlix",
		Amount:       decimal.RequireFromString("60.00"),
		Status:       decision.StatusBlock,
		Reasoning:    "Exceeds per-subscription limit.",
	}))
	require.NoError(t, store.Record(ctx, decision.Decision{
		ID:           "d2",
		MerchantName: "Netflix",
		Amount:       decimal.RequireFromString("19.99"),
		Status:       decision.StatusApprove,
		Reasoning:    "Trusted merchant within limits.",
	}))
	return store
}

func newTestRouter(store decisionlog.Store) chi.Router {
	r := chi.NewRouter()
	New(store, nil).Register(r)
	return r
}

func TestHandleHistory_NewestFirst(t *testing.T) {
	router := newTestRouter(seededStore(t))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/decisions"))

	testutil.AssertStatusOK(t, rr)
	resp := testutil.UnmarshalResponse[HistoryResponse](t, rr)
	require.Len(t, resp.Decisions, 2)
	assert.Equal(t, "d2", resp.Decisions[0].ID)
	assert.Equal(t, "d1", resp.Decisions[1].ID)
}

func TestHandleHistory_Empty(t *testing.T) {
	router := newTestRouter(decisionlog.NewInMemoryStore())

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/decisions"))

	testutil.AssertStatusOK(t, rr)
	resp := testutil.UnmarshalResponse[HistoryResponse](t, rr)
	assert.Empty(t, resp.Decisions)
}

func TestHandleExport_NDJSON(t *testing.T) {
	router := newTestRouter(seededStore(t))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/decisions/export"))

	testutil.AssertStatusOK(t, rr)
	assert.Equal(t, "application/x-ndjson", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "decisions.ndjson")

	lines := bytes.Split(bytes.TrimSpace(testutil.ReadBody(t, rr)), []byte("\n"))
	require.Len(t, lines, 2)

	var first decision.Decision
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "d2", first.ID)
	assert.Equal(t, "Netflix", first.MerchantName)
}
