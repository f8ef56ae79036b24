package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

func newTrade(strike, price float64, action eventmodels.OrderAction, condition eventmodels.ConditionID, seq int64) eventmodels.OptionTrade {
	return eventmodels.OptionTrade{
		Root:                "XYZ",
		Symbol:              fmt.Sprintf("XYZ240621C%08d", int(strike*1000)),
		Strike:              strike,
		Expiry:              "2024-06-21",
		Dte:                 18,
		OptionType:          eventmodels.Call,
		OrderAction:         action,
		Size:                20,
		ConditionID:         condition,
		ExchangeID:          eventmodels.ExchangeCBOE,
		SeqNo:               seq,
		Timestamp:           eventmodels.NewTimeOfDay(10, 15, 30, 250),
		Price:               price,
		Delta:               50,
		CurrentDelta:        45,
		TransactionEstimate: eventmodels.BuyToOpen,
	}
}

func batch() SpreadsRequest {
	return SpreadsRequest{Trades: []eventmodels.OptionTrade{
		newTrade(50, 3.0, eventmodels.Bought, eventmodels.ConditionMultLegAutoEx, 1),
		newTrade(55, 1.0, eventmodels.Sold, eventmodels.ConditionMultLegAutoEx, 2),
		newTrade(60, 0.5, eventmodels.Bought, eventmodels.ConditionAutoExecution, 3),
	}}
}

func doRequest(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	SetupHandler(router)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeSpreads(t *testing.T, rec *httptest.ResponseRecorder) SpreadsResponse {
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SpreadsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleSpreads(t *testing.T) {
	t.Run("multi leg and single leg", func(t *testing.T) {
		resp := decodeSpreads(t, doRequest(t, http.MethodPost, "/spreads", batch()))

		require.Equal(t, 2, resp.Count)
		assert.NotEmpty(t, resp.RequestID)
		assert.Equal(t, eventmodels.Vertical, resp.Spreads[0].SpreadName)
		assert.InDelta(t, 4000.0, resp.Spreads[0].NetValue, 1e-9)
		assert.Equal(t, eventmodels.LongCall, resp.Spreads[1].SpreadName)
		assert.InDelta(t, 1000.0, resp.Spreads[1].NetValue, 1e-9)
	})

	t.Run("without single legs", func(t *testing.T) {
		resp := decodeSpreads(t, doRequest(t, http.MethodPost, "/spreads?single_legs=false", batch()))

		require.Equal(t, 1, resp.Count)
		assert.Equal(t, eventmodels.Vertical, resp.Spreads[0].SpreadName)
	})

	t.Run("threshold", func(t *testing.T) {
		resp := decodeSpreads(t, doRequest(t, http.MethodPost, "/spreads?threshold=3000", batch()))

		require.Equal(t, 1, resp.Count)
		assert.Equal(t, eventmodels.Vertical, resp.Spreads[0].SpreadName)

		resp = decodeSpreads(t, doRequest(t, http.MethodPost, "/spreads?threshold=1000000", batch()))
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Spreads)
	})

	t.Run("empty batch", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/spreads", SpreadsRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
		assert.Equal(t, eventmodels.ErrEmptyBatch.Error(), errResp.Msg)
	})

	t.Run("invalid query", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/spreads?threshold=lots", batch())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/spreads", "not a batch")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/spreads", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleHealthz(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")

	rec = doRequest(t, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
